package auditlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func at(minute int) time.Time {
	return time.Date(2019, 3, 1, 10, minute, 0, 0, time.UTC)
}

func TestTallyHooks(t *testing.T) {
	entries := []Entry{
		{Type: "hook.create", What: "installed Travis CI for mozilla/a", When: at(1)},
		{Type: "hook.create", What: "installed Travis CI for mozilla/b", When: at(2)},
		{Type: "hook.destroy", What: "uninstalled Travis CI for mozilla/a", When: at(4)},
		{Type: "hook.create", What: "installed Travis CI for mozilla/c", When: at(3)},
		{Type: "hook.create", What: "installed Web for mozilla/a", When: at(5)},
		{Type: "hook.create", What: "installed IRC for mozilla/a", When: at(6)},
		{Type: "hook.destroy", What: "uninstalled IRC for mozilla/a", When: at(7)},
		{Type: "repo.create", What: "created mozilla/d", When: at(8)},
		{Type: "hook.destroy", What: "uninstalled Jenkins for mozilla/a", When: at(9)},
		{Type: "hook.create", What: "something unexpected", When: at(10)},
	}

	usage := TallyHooks(entries, zap.NewNop())

	assert.Equal(t, []Usage{
		{Service: "Travis CI", Repositories: 2},
		{Service: "Web", Repositories: 1},
	}, usage)
}

func TestTallyHooks_OrderedByTime(t *testing.T) {
	// the destroy happened before the create even though it is listed last
	entries := []Entry{
		{Type: "hook.create", What: "installed Web for mozilla/a", When: at(20)},
		{Type: "hook.destroy", What: "uninstalled Web for mozilla/a", When: at(10)},
	}

	usage := TallyHooks(entries, zap.NewNop())

	assert.Equal(t, []Usage{{Service: "Web", Repositories: 1}}, usage)
}

func TestDecode(t *testing.T) {
	entries, err := Decode(strings.NewReader(`[{"type": "hook.create", "what": "installed Web for mozilla/a", "when": "2019-03-01T10:05:00Z", "who": "alice"}]`))

	require.NoError(t, err)
	assert.Equal(t, []Entry{{Type: "hook.create", What: "installed Web for mozilla/a", When: at(5)}}, entries)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{`))

	assert.Error(t, err)
}
