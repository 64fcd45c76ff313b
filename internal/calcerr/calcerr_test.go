package calcerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("lashing 2: %w", New(UnmappedOrientation, "side=%s lean=%s", "F", ""))

	assert.True(t, errors.Is(err, ErrUnmappedOrientation))
	assert.False(t, errors.Is(err, ErrInvalidGeometry))
	assert.Equal(t, UnmappedOrientation, KindOf(err))
	assert.Equal(t, "lashing 2: unmapped orientation: side=F lean=", err.Error())
}

func TestKindOf_Foreign(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "remedy unreachable", RemedyUnreachable.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
	assert.Equal(t, "empty lashing set", ErrEmptyLashingSet.Error())
}
