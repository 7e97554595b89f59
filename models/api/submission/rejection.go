package submissionapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type RejectionData struct {
	Reasons      []string `json:"reasons"`       // причины из справочника
	CustomReason string   `json:"custom_reason"` // произвольная причина
}

func (d RejectionData) Validate() error {
	if len(d.AllReasons()) == 0 {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

// AllReasons итоговый набор причин, пустые строки отбрасываются
func (d RejectionData) AllReasons() []string {
	result := make([]string, 0, len(d.Reasons)+1)
	for _, reason := range d.Reasons {
		if strings.TrimSpace(reason) != "" {
			result = append(result, strings.TrimSpace(reason))
		}
	}
	if strings.TrimSpace(d.CustomReason) != "" {
		result = append(result, strings.TrimSpace(d.CustomReason))
	}
	return result
}
