package engine

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/dom"
)

func defaultLabelPolicy() *bluemonday.Policy {
	return bluemonday.StrictPolicy()
}

func (s *Session) isFile(f dom.Field) bool {
	c := f.Container()
	return c != nil && c.HasClass(s.engine.cfg.FileContainerClass)
}

func (s *Session) snapshotLabel(f dom.Field) {
	if !s.isFile(f) {
		return
	}
	labels := f.Container().Labels()
	if len(labels) == 0 {
		return
	}
	s.labels[f] = labels[0].Text()
}

// writeFileLabel shows the selected file name in the container's first label,
// restoring the recorded text when the selection is cleared.
func (s *Session) writeFileLabel(f dom.Field) {
	labels := f.Container().Labels()
	if len(labels) == 0 {
		return
	}

	name := s.cleanLabel(DisplayName(f.Value()))
	if name == "" {
		original, ok := s.labels[f]
		if !ok {
			return
		}
		name = original
	}
	labels[0].SetText(name)
	s.engine.logger.Debug("file label updated", zap.String("field", f.Name()), zap.String("label", name))
}

// DisplayName returns the final path segment of a file input value. Windows
// separators are treated like forward slashes, so "C:\fakepath\a.pdf" yields
// "a.pdf".
func DisplayName(value string) string {
	normalised := strings.ReplaceAll(value, `\`, "/")
	if idx := strings.LastIndex(normalised, "/"); idx >= 0 {
		return normalised[idx+1:]
	}
	return normalised
}

// cleanLabel strips markup from a file name. The policy escapes entities, so
// the result is unescaped again before being stored as plain text.
func (s *Session) cleanLabel(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(s.engine.labelPolicy.Sanitize(name)))
}
