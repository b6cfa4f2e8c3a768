package modify

import (
	"github.com/rs/zerolog/log"
)

// deleteFeature removes the edited feature from the source and clears the
// selection.
func (c *Control) deleteFeature() {
	f := c.state.feature
	if f == nil {
		return
	}

	err := c.source.RemoveFeature(f)
	if err != nil {
		log.Warn().Err(err).Str("feature", f.ID).Msg("could not remove feature from source")
	} else {
		log.Info().Str("feature", f.ID).Msg("deleted feature")
	}

	c.selectInteraction.Features().Clear()
	if c.state.feature != nil {
		c.OnSelectionCleared()
	}
}
