package panel

// ChangeEvent describes a write to a bound property. The same value is passed
// to the controller's callback and to every container above it.
type ChangeEvent struct {
	Object     any
	Property   string
	Value      any
	Controller Controller
}

// ChangeFunc receives change and finish-change notifications.
type ChangeFunc func(ChangeEvent)

// OpenCloseFunc receives the container whose open state changed.
type OpenCloseFunc func(*GUI)
