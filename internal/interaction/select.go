package interaction

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/featedit/internal/mapview"
	"github.com/ja-he/featedit/internal/model"
	"github.com/ja-he/featedit/internal/styling"
)

// Select selects the feature clicked on.
// At most one feature is selected at a time; clicking where no feature is
// clears the selection.
type Select struct {
	// Filter decides which features can be selected; nil allows all.
	Filter func(f *model.Feature) bool
	// Style is used to render selected features that have no own style.
	Style styling.Spec

	features *model.Collection
}

// NewSelect returns a pointer to a new select interaction.
func NewSelect(filter func(f *model.Feature) bool, style styling.Spec) *Select {
	return &Select{
		Filter:   filter,
		Style:    style,
		features: model.NewCollection(),
	}
}

// Features returns the collection of selected features.
func (s *Select) Features() *model.Collection {
	return s.features
}

// HandleEvent handles the event and returns whether it should be passed on
// to the next interaction.
func (s *Select) HandleEvent(e *mapview.BrowserEvent) bool {
	if e.Type != mapview.Click {
		return true
	}

	hit := e.Map.ForEachFeatureAtPixel(e.Pixel, func(f *model.Feature) bool {
		return s.Filter == nil || s.Filter(f)
	})

	if hit != nil && s.features.Len() == 1 && s.features.Contains(hit) {
		return true
	}

	s.features.Clear()
	if hit != nil {
		log.Debug().Str("feature", hit.ID).Msg("selecting feature")
		s.features.Add(hit)
	}
	return true
}
