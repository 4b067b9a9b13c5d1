package observer

import (
	"bytes"
	"testing"

	"github.com/reusedev/observer-hub/config"
	"github.com/reusedev/observer-hub/internal/modules/logs"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, func() []string) {
	t.Helper()
	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON
	buf := &bytes.Buffer{}
	reg := NewRegistry(logs.New(buf, cfg))
	messages := func() []string {
		entries, err := logs.ReadEntries(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		buf.Reset()
		return logs.Messages(entries)
	}
	return reg, messages
}

type recorder struct {
	name  string
	got   []State
	order *[]string
}

func (r *recorder) Name() string {
	return r.name
}

func (r *recorder) OnNext(state State) {
	r.got = append(r.got, state)
	if r.order != nil {
		*r.order = append(*r.order, r.name)
	}
}
