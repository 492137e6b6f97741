package pitch

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		step  string
		alter int
		want  int
	}{
		{"C", 0, 0},
		{"D", 0, 2},
		{"E", 0, 4},
		{"F", 0, 5},
		{"G", 0, 7},
		{"A", 0, 9},
		{"B", 0, 11},
		{"B", 1, 0},
		{"C", -1, 11},
		{"F", 1, 6},
		{"E", -2, 2},
		{"C", -13, 11},
		{"G", 14, 9},
	}

	for _, c := range cases {
		name := fmt.Sprintf("resolve %v with alter %v", c.step, c.alter)
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(c.step, c.alter)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveRejectsUnknownStep(t *testing.T) {
	for _, step := range []string{"H", "c", "", "Bb"} {
		_, err := Resolve(step, 0)
		assert.True(t, errors.Is(err, ErrUnknownStep), "step %q", step)
	}
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Name(0))
	assert.Equal("F#", Name(6))
	assert.Equal("B", Name(-1))
}
