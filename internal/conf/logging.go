package conf

// LoggingConfig holds the logger settings, processed under the LOG
// envconfig prefix.
type LoggingConfig struct {
	Level            string `json:"log_level"`
	File             string `json:"log_file"`
	DisableColors    bool   `json:"disable_colors" split_words:"true"`
	QuoteEmptyFields bool   `json:"quote_empty_fields" split_words:"true"`
	TSFormat         string `json:"ts_format"`
}
