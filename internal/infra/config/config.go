package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatasetFolder      string `env:"DATASET_FOLDER"       envDefault:"guru_asana_data_sets_in"`
	ImagesOutFolder    string `env:"IMAGES_OUT_FOLDER"    envDefault:"guru_asana_data_sets_out"`
	CSVOutFolder       string `env:"CSV_OUT_FOLDER"       envDefault:"guru_asana_pose_out_csv"`
	AnnotatedOutFolder string `env:"ANNOTATED_OUT_FOLDER" envDefault:"pose_landmark_3d_image"`
	WorldPlotOutFolder string `env:"WORLD_PLOT_OUT_FOLDER" envDefault:"pose_world_landmark_plot"`

	DifficultyLevel string `env:"DIFFICULTY_LEVEL" envDefault:"beginner"`

	PoseModelPath          string  `env:"POSE_MODEL_PATH"          envDefault:"models/pose_landmark_full.onnx"`
	MinDetectionConfidence float32 `env:"MIN_DETECTION_CONFIDENCE" envDefault:"0.7"`

	PerClassLimit int `env:"PER_CLASS_LIMIT" envDefault:"0"`

	MetricsPort int    `env:"METRICS_PORT" envDefault:"0"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
