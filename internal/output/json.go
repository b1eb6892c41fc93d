package output

import (
	"encoding/json"

	"github.com/oblaser/fdmon/pkg/model"
)

func ToJSON(r model.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
