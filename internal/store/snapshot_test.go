package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    FieldID
		wantErr bool
	}{
		{input: "firstName", want: FirstName},
		{input: "middleName", want: MiddleName},
		{input: "surname", want: Surname},
		{input: "Surname", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFieldID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshotWith(t *testing.T) {
	t.Parallel()

	orig := Snapshot{FirstName: "Ada"}
	next := orig.With(UpdateRecord{Field: Surname, Value: "Lovelace"})

	assert.Equal(t, Snapshot{FirstName: "Ada"}, orig, "original must not change")
	assert.Equal(t, Snapshot{FirstName: "Ada", Surname: "Lovelace"}, next)

	unknown := next.With(UpdateRecord{Field: "nickname", Value: "x"})
	assert.Equal(t, next, unknown)
	assert.Equal(t, "Lovelace", next.Get(Surname))
	assert.Empty(t, next.Get("nickname"))
}

func TestFold(t *testing.T) {
	t.Parallel()

	t.Run("empty batch returns input", func(t *testing.T) {
		t.Parallel()
		s := Snapshot{FirstName: "Martin", Surname: "Burford"}
		assert.Equal(t, s, Fold(s, nil))
		assert.Equal(t, s, Fold(s, []UpdateRecord{}))
	})

	t.Run("untouched fields keep their value", func(t *testing.T) {
		t.Parallel()
		s := Snapshot{FirstName: "Martin", MiddleName: "James", Surname: "Burford"}
		got := Fold(s, []UpdateRecord{{Field: MiddleName, Value: "J."}})
		assert.Equal(t, Snapshot{FirstName: "Martin", MiddleName: "J.", Surname: "Burford"}, got)
	})

	t.Run("last write wins within a batch", func(t *testing.T) {
		t.Parallel()
		got := Fold(Snapshot{}, []UpdateRecord{
			{Field: FirstName, Value: "one"},
			{Field: FirstName, Value: "two"},
		})
		assert.Equal(t, "two", got.FirstName)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		batch := []UpdateRecord{
			{Field: FirstName, Value: "Martin"},
			{Field: MiddleName, Value: "James"},
			{Field: Surname, Value: "Burford"},
		}
		once := Fold(Snapshot{}, batch)
		twice := Fold(once, batch)
		assert.Equal(t, once, twice)
	})
}
