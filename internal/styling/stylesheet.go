package styling

import (
	"fmt"

	"github.com/ja-he/featedit/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Background Entry
	Status     Entry

	// Layer is used for features that carry no style of their own.
	Layer Spec
	// Select is overlaid onto the selected feature.
	Select Spec
	// Modify is used for the vertex under the pointer while vertex editing.
	Modify Spec
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	var err error
	stylesheet := Stylesheet{}

	stylesheet.Background, err = EntryFromConfig(c.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	stylesheet.Status, err = EntryFromConfig(c.Status)
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	stylesheet.Layer, err = SpecFromConfig(c.Layer)
	if err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}
	stylesheet.Select, err = SpecFromConfig(c.Select)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	stylesheet.Modify, err = SpecFromConfig(c.Modify)
	if err != nil {
		return nil, fmt.Errorf("modify: %w", err)
	}

	return &stylesheet, nil
}
