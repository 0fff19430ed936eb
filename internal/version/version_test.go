package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	saved := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = saved[0], saved[1], saved[2] })

	Version, Commit, Date = "1.2.0", "abc1234", "2026-10-19"
	assert.Equal(t, "1.2.0 (abc1234, 2026-10-19)", String())
}
