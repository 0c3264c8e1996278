package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Validate(t *testing.T) {
	tests := map[string]struct {
		rect Rect
		err  error
	}{
		"fits exactly":   {rect: NewRect(0, 0, 6, 4)},
		"inner":          {rect: NewRect(1, 1, 4, 2)},
		"zero width":     {rect: NewRect(0, 0, 0, 2), err: ErrInvalidConfig},
		"negative":       {rect: NewRect(0, 0, 2, -1), err: ErrInvalidConfig},
		"past right":     {rect: NewRect(3, 0, 4, 2), err: ErrOutOfBounds},
		"past bottom":    {rect: NewRect(0, 3, 2, 2), err: ErrOutOfBounds},
		"negative start": {rect: NewRect(-1, 0, 2, 2), err: ErrOutOfBounds},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.rect.Validate(6, 4)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	r := NewRect(0, 0, 6, 4)
	assert.Equal(t, NewRect(4, 2, 2, 2), r.Intersect(NewRect(4, 2, 5, 5)))
	assert.True(t, r.Intersect(NewRect(10, 10, 2, 2)).Empty())
}

func TestRect_InsetAndTranslate(t *testing.T) {
	r := NewRect(0, 0, 10, 5).Inset(1)
	assert.Equal(t, NewRect(1, 1, 8, 3), r)
	assert.Equal(t, NewRect(3, 4, 8, 3), r.Translate(2, 3))
	assert.True(t, r.Contains(1, 1))
	assert.False(t, r.Contains(9, 1))
	assert.Equal(t, Point[int]{X: 1, Y: 1}, r.Origin())
}
