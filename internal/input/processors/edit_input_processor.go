package processors

import (
	"fmt"

	"github.com/ja-he/propgrid/internal/control/action"
	"github.com/ja-he/propgrid/internal/input"
)

// EditInputProcessor is a SimpleInputProcessor for an active edit session.
// It has a number of defined mappings for session-level keys (e.g. CR to
// commit, ESC for a callback to cancel and remove this processor as an
// overlay); any other input is forwarded wholesale to its fallback, which
// would typically hand it to the session's editor.
type EditInputProcessor struct {
	mappings map[input.Key]action.Action

	fallback func(key input.Key) bool
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *EditInputProcessor) ProcessInput(key input.Key) bool {
	mappedAction, mappingExists := p.mappings[key]
	if mappingExists {
		mappedAction.Do()
		return true
	}
	return p.fallback(key)
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
// An edit processor always takes this precedence.
func (p *EditInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *EditInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// NewEditInputProcessor returns a pointer to a new EditInputProcessor with
// the given session-level mappings and fallback.
func NewEditInputProcessor(
	keyMappings map[input.Keyspec]action.Action,
	fallback func(key input.Key) bool,
) (*EditInputProcessor, error) {
	mappings := map[input.Key]action.Action{}
	for keyspec, mappedAction := range keyMappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%s)", keyspec, err.Error())
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for edit processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		mappings[keys[0]] = mappedAction
	}
	return &EditInputProcessor{
		mappings: mappings,
		fallback: fallback,
	}, nil
}
