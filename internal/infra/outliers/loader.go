package outliers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/forceporquillo/guru-asana-yoga-pose/internal/domain/entity"
)

// LoadReport reads the outlier list produced by the external classifier
// pass. The file is a JSON array of outlier records.
func LoadReport(path string) ([]entity.Outlier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read outlier report %s: %w", path, err)
	}

	var outliers []entity.Outlier
	if err := json.Unmarshal(data, &outliers); err != nil {
		return nil, fmt.Errorf("parse outlier report %s: %w", path, err)
	}
	return outliers, nil
}
