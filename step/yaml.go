package step

import "time"

type stepView struct {
	Target   string   `yaml:"target"`
	Visited  []string `yaml:"visited,omitempty"`
	Edge     string   `yaml:"edge,omitempty"`
	Mutation string   `yaml:"mutation,omitempty"`
	Caption  string   `yaml:"caption,omitempty"`
	Delay    string   `yaml:"delay"`
}

type outcomeView struct {
	Found  bool     `yaml:"found"`
	Target string   `yaml:"target,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Order  []string `yaml:"order,omitempty"`
}

type sequenceView struct {
	Kind     string      `yaml:"kind"`
	Op       string      `yaml:"op"`
	Duration string      `yaml:"duration"`
	Steps    []Step      `yaml:"steps"`
	Outcome  outcomeView `yaml:"outcome"`
	Final    string      `yaml:"final,omitempty"`
}

// MarshalYAML implements yaml.Marshaler with a flat, human-readable view.
func (s Step) MarshalYAML() (interface{}, error) {
	v := stepView{
		Target:  s.Highlight.Target.String(),
		Visited: s.Highlight.Visited,
		Caption: s.Caption,
		Delay:   s.Delay.String(),
	}
	if s.Highlight.Edge != nil {
		v.Edge = s.Highlight.Edge.String()
	}
	if s.Mutation != nil {
		v.Mutation = s.Mutation.String()
	}

	return v, nil
}

// MarshalYAML implements yaml.Marshaler.
func (q *Sequence) MarshalYAML() (interface{}, error) {
	v := sequenceView{
		Kind:     string(q.Kind),
		Op:       q.Op,
		Duration: q.Duration().Round(time.Millisecond).String(),
		Steps:    q.Steps,
		Outcome: outcomeView{
			Found: q.Outcome.Found,
			Value: q.Outcome.Value,
			Order: q.Outcome.Order,
		},
	}
	if !q.Outcome.Target.IsNone() {
		v.Outcome.Target = q.Outcome.Target.String()
	}
	if q.Final != nil {
		v.Final = q.Final.String()
	}

	return v, nil
}
