package holdings

import (
	"testing"
	"time"
)

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("type", Buy).Append("symbol", "BTC").Append("quantity", Q(1.5))
			},
			want: `{"type":"buy","symbol":"BTC","quantity":1.5}`,
		},
		{
			name: "optional fields",
			build: func(w *jsonObjectWriter) {
				w.Append("fees", 0) // a zero value is still written by Append
				w.Optional("id", "")
				w.Optional("count", 0)
				w.Optional("at", time.Time{})
				w.Optional("memo", "dca")
			},
			want: `{"fees":0,"memo":"dca"}`,
		},
		{
			name: "optional only",
			build: func(w *jsonObjectWriter) {
				w.Optional("id", "a").Optional("memo", nil)
			},
			want: `{"id":"a"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}

	t.Run("marshal error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("ch", make(chan int))
		w.Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() succeeded, want an error for an unsupported value")
		}
	})
}
