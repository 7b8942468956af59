// Copyright 2026 The libmicrohttpd-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tracing

import (
	"context"
	"errors"
	"testing"
)

// recordingTracer captures span names and attributes for assertions.
type recordingTracer struct {
	spans []*recordingSpan
}

type recordingSpan struct {
	name  string
	attrs map[string]interface{}
	ended bool
}

func (t *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	s := &recordingSpan{name: name, attrs: map[string]interface{}{}}
	t.spans = append(t.spans, s)
	return ctx, s
}

func (s *recordingSpan) SetAttribute(key string, value interface{}) {
	s.attrs[key] = value
}

func (s *recordingSpan) End() {
	s.ended = true
}

func TestDefaultIsNoop(t *testing.T) {
	SetTracer(nil)
	if Enabled() {
		t.Error("Enabled() = true with the default tracer")
	}

	ctx := context.Background()
	gotCtx, span := Start(ctx, "anything")
	if gotCtx != ctx {
		t.Error("noop Start changed the context")
	}
	span.SetAttribute("k", "v")
	span.End()
}

func TestSetTracer(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	defer SetTracer(nil)

	if !Enabled() {
		t.Error("Enabled() = false after SetTracer")
	}
	if GetTracer() != Tracer(rec) {
		t.Error("GetTracer did not return the installed tracer")
	}

	_, span := Start(context.Background(), "op")
	span.End()

	if len(rec.spans) != 1 || rec.spans[0].name != "op" {
		t.Errorf("spans = %+v, want one span named op", rec.spans)
	}
	if !rec.spans[0].ended {
		t.Error("span not ended")
	}
}

func TestSetTracerNilRestoresNoop(t *testing.T) {
	SetTracer(&recordingTracer{})
	SetTracer(nil)
	if Enabled() {
		t.Error("Enabled() = true after SetTracer(nil)")
	}
}

func TestRunRecordsAttributesAndError(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	defer SetTracer(nil)

	wantErr := errors.New("boom")
	err := Run(context.Background(), "work", map[string]interface{}{"bytes": 42}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}

	if len(rec.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(rec.spans))
	}
	s := rec.spans[0]
	if s.name != "work" || s.attrs["bytes"] != 42 || !s.ended {
		t.Errorf("span = %+v, want ended span named work with bytes=42", s)
	}
}

func TestRunWithoutTracerCallsFn(t *testing.T) {
	SetTracer(nil)

	called := false
	if err := Run(context.Background(), "work", nil, func(context.Context) error {
		called = true
		return nil
	}); err != nil {
		t.Errorf("Run error = %v, want nil", err)
	}
	if !called {
		t.Error("fn not called when tracing disabled")
	}
}
