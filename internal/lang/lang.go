// Package lang provides the human-readable label strings surfaced in
// sync responses.
package lang

const UpdateFailLabel = "updateFailLabel"

var labels = map[string]string{
	UpdateFailLabel: "更新失败",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Get returns the label for key, or the key itself when no label is
// registered so missing entries stay visible instead of rendering
// empty messages.
func (s *Service) Get(key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}
