package tag

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ColorLabel is a color used to flag an entity. A list carries at most one
// COLOR_LABEL tag when it is written through SetLabel.
type ColorLabel int

// Color labels. LabelNone means no label is set.
const (
	LabelNone ColorLabel = iota
	LabelRed
	LabelOrange
	LabelYellow
	LabelGreen
	LabelBlue
	LabelPurple
	LabelBlack
)

var labelNames = [...]string{
	LabelNone:   "NONE",
	LabelRed:    "RED",
	LabelOrange: "ORANGE",
	LabelYellow: "YELLOW",
	LabelGreen:  "GREEN",
	LabelBlue:   "BLUE",
	LabelPurple: "PURPLE",
	LabelBlack:  "BLACK",
}

var colorLabelScope = ScopeColorLabel.String()

func (l ColorLabel) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return fmt.Sprintf("ColorLabel(%d)", int(l))
	}
	return labelNames[l]
}

// ParseColorLabel returns the label with the given symbolic name.
// Returns ErrUnknownLabel if no label has that name.
func ParseColorLabel(name string) (ColorLabel, error) {
	for i, n := range labelNames {
		if n == name {
			return ColorLabel(i), nil
		}
	}
	return LabelNone, errors.Wrapf(ErrUnknownLabel, "%q", name)
}

// NewColorLabelTag returns a tag in the COLOR_LABEL scope.
func NewColorLabelTag(label ColorLabel) (Tag, error) {
	return New(colorLabelScope, label.String())
}

// Label returns the label of the first COLOR_LABEL tag. It returns
// LabelNone when there is no such tag or its name is not a label; the
// latter is logged as a warning.
func Label(tags []Tag) ColorLabel {
	name, ok := FirstNameInScope(colorLabelScope, tags)
	if !ok {
		return LabelNone
	}
	label, err := ParseColorLabel(name)
	if err != nil {
		zap.L().Warn("invalid color label tag",
			zap.String("name", name),
			zap.Error(err))
		return LabelNone
	}
	return label
}

// SetLabel replaces every COLOR_LABEL tag with a single tag for label.
// Returns ErrUnknownLabel if label is not one of the declared labels.
func SetLabel(tags []Tag, label ColorLabel) ([]Tag, error) {
	if label < 0 || int(label) >= len(labelNames) {
		return tags, errors.Wrapf(ErrUnknownLabel, "%d", int(label))
	}
	return UpdateInScope(colorLabelScope, tags, label.String())
}
