// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/journal-scout/pkg/types"
)

// sseSink writes discovery events as server-sent-event lines, flushing
// after each one so the client sees progress as it happens.
type sseSink struct {
	w http.ResponseWriter
	f http.Flusher
}

func newSSESink(w http.ResponseWriter) *sseSink {
	f, _ := w.(http.Flusher)
	return &sseSink{w: w, f: f}
}

func (s *sseSink) send(payload string) {
	fmt.Fprintf(s.w, "data: %s\n\n", payload)
	if s.f != nil {
		s.f.Flush()
	}
}

func (s *sseSink) Progress(src types.SourceDescriptor) {
	s.send(fmt.Sprintf("Searching %s (%s)...", src.Name, src.RankLabel))
}

func (s *sseSink) Error(reason string) {
	s.send("ERROR: " + reason)
}

func (s *sseSink) Results(batch []types.Candidate) {
	data, err := json.Marshal(batch)
	if err != nil {
		s.Error("encoding results: " + err.Error())
		return
	}
	s.send(string(data))
}

func (s *sseSink) Empty() {
	s.send("DONE")
}
