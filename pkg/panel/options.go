package panel

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/frame"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/widget"
)

// DefaultTitle is used when Options.Title is empty on a root panel.
const DefaultTitle = "Controls"

// Options configures New.
type Options struct {
	// Container receives the root element. Nil creates a detached root.
	Container widget.Element `validate:"-"`
	// Width is a presentation hint forwarded to the backend. Zero leaves the
	// backend default.
	Width int    `validate:"gte=0,lte=4096"`
	Title string `validate:"max=256"`
	// CloseFolders starts every folder added anywhere in the tree closed.
	CloseFolders bool
	InjectStyles bool
	TouchStyles  bool
	// Parent makes the new GUI a folder of Parent. Backend, Frames and
	// Logger are then inherited and the fields below are ignored.
	Parent *GUI `validate:"-"`

	Backend widget.Backend   `validate:"-"`
	Frames  *frame.Scheduler `validate:"-"`
	Logger  *zerolog.Logger  `validate:"-"`
}

// DefaultOptions returns the options of a standalone root panel.
func DefaultOptions() Options {
	return Options{
		Title:        DefaultTitle,
		InjectStyles: true,
		TouchStyles:  true,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func validateOptions(opts Options) error {
	if err := validatorInstance().Struct(opts); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			field := strings.ToLower(fe.Field())
			return tperrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
		}
		return tperrors.NewValidationError("options", err.Error(), err)
	}
	if opts.Parent != nil && opts.Parent.destroyed {
		return tperrors.NewValidationError("parent", "parent panel was destroyed", nil)
	}
	return nil
}
