package reveal

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a timeline script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Node     NodeID  `json:"node,omitempty"`
	Fraction float64 `json:"fraction,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a timeline script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"snapshot":  true,
	"scroll":    true,
	"intersect": true,
	"hover":     true,
	"unhover":   true,
	"press":     true,
	"release":   true,
	"clear":     true,
	"unmount":   true,
	"wait":      true,
}

// Script sequences viewport changes, pointer variants and snapshots across
// frames, for demos and automated visual checks. Call Step once per frame,
// before Animator.Tick.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON timeline script:
//
//	{"steps": [
//		{"action": "scroll", "y": 900, "width": 1280, "height": 720},
//		{"action": "wait", "frames": 30},
//		{"action": "hover", "node": "services.card.0"},
//		{"action": "snapshot", "label": "services"}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// Step executes the next action against a, unless a wait is counting down.
// snapshot is called for "snapshot" steps and may be nil.
func (s *Script) Step(a *Animator, snapshot func(label string)) error {
	if s.done {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	i := s.cursor
	st := s.steps[i]
	s.cursor++

	var err error
	switch st.Action {
	case "snapshot":
		if snapshot != nil {
			snapshot(st.Label)
		}
	case "scroll":
		a.SetViewport(Rect{X: st.X, Y: st.Y, Width: st.Width, Height: st.Height})
	case "intersect":
		a.ReportIntersection(st.Node, st.Fraction)
	case "hover":
		err = a.ApplyTransient(st.Node, TransientHover)
	case "unhover":
		err = a.ReleaseTransient(st.Node, TransientHover)
	case "press":
		err = a.ApplyTransient(st.Node, TransientPress)
	case "release":
		err = a.ReleaseTransient(st.Node, TransientPress)
	case "clear":
		err = a.ClearTransient(st.Node)
	case "unmount":
		err = a.Unmount(st.Node)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", i, st.Action, err)
	}
	return nil
}
