// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lazyseq/jsoncur"
)

// benchInput synthesizes a moderately nested document with a mix of value
// kinds, escapes included.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records": [`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id": %d, "score": %g, "name": "record #%d",`+
			` "tags": ["a", "b\n", null], "live": %v}`,
			i, float64(i)*1.25, i, i%2 == 0)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkWhole(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Whole", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			rd, err := jsoncur.NewBytes(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			root, err := rd.Root()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if _, err := root.Whole(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

// BenchmarkSelective descends to a single deep field, which the cursor
// cascade can do without materializing anything else.
func BenchmarkSelective(b *testing.B) {
	input := benchInput()

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v struct {
				Records []struct {
					ID int `json:"id"`
				} `json:"records"`
			}
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			_ = v.Records[0].ID
		}
	})

	b.Run("Cursor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			rd, err := jsoncur.NewBytes(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			root, _ := rd.Root()
			ms, err := root.Members()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if !ms.Next() {
				b.Fatalf("Unexpected end of object: %v", ms.Err())
			}
			if _, err := ms.Member().Name().Bytes(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			vc, err := ms.Member().Value()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			es, err := vc.Elements()
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if !es.Next() {
				b.Fatalf("Unexpected end of array: %v", es.Err())
			}
			if _, err := es.Value().Whole(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
