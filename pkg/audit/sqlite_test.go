package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSinkRoundTrip(t *testing.T) {
	ctx := context.Background()

	sink, err := OpenSQLiteSink(":memory:")
	require.NoError(t, err)
	defer sink.Close()

	j := NewJournal(sink)
	_, err = j.Record(ctx, Record{Op: "open_account", AccountID: "ACC1"})
	require.NoError(t, err)
	_, err = j.Record(ctx, Record{Op: "deposit", AccountID: "ACC1", Amount: "100.00"})
	require.NoError(t, err)
	_, err = j.Record(ctx, Record{Op: "transfer", AccountID: "ACC1", Counterparty: "ACC2", Amount: "40.00"})
	require.NoError(t, err)

	entries, err := sink.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, int64(3), entries[2].Seq)
	assert.True(t, VerifyChain(entries))
	assert.Contains(t, entries[1].Payload, `"op":"deposit"`)
}
