package module

import (
	"time"

	"airreviews/internal/adapters/csvio"
	"airreviews/internal/adapters/lexicon/afinn"
	"airreviews/internal/platform/config"
	"airreviews/internal/platform/net/http/bind"
	"airreviews/internal/services/reviews/domain"
)

// Options holds configuration settings for the reviews module
type Options struct {
	Run     domain.RunInput `json:"run"`
	Columns domain.Columns  `json:"columns"`
	Lexicon LexiconOptions  `json:"lexicon"`
}

// LexiconOptions selects the lexicon source
type LexiconOptions struct {
	Source   string        `json:"source"    validate:"required,url_or_path"`
	CacheDir string        `json:"cache_dir"`
	Timeout  time.Duration `json:"timeout"`
	MaxAge   time.Duration `json:"max_age"`
}

// SourceOptions adapts LexiconOptions for afinn.NewSource
func (o LexiconOptions) SourceOptions() afinn.SourceOptions {
	return afinn.SourceOptions{
		Location: o.Source,
		CacheDir: o.CacheDir,
		Timeout:  o.Timeout,
		MaxAge:   o.MaxAge,
	}
}

// FromConfig reads CORE_CLEAN_* and CORE_LEXICON_* settings
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("CORE_CLEAN_")
	lc := cfg.Prefix("CORE_LEXICON_")
	def := domain.DefaultColumns()

	return Options{
		Run: domain.RunInput{
			In:          cc.MayString("IN", ""),
			Out:         cc.MayString("OUT", ""),
			Encoding:    cc.MayEnum("ENCODING", csvio.UTF8, csvio.Encodings...),
			SkipInvalid: cc.MayBool("SKIP_INVALID", false),
		},
		Columns: domain.Columns{
			Date:      cc.MayString("DATE_COLUMN", def.Date),
			Title:     cc.MayString("TITLE_COLUMN", def.Title),
			Body:      cc.MayString("BODY_COLUMN", def.Body),
			Sentiment: cc.MayString("SENTIMENT_COLUMN", def.Sentiment),
			After:     cc.MayString("SENTIMENT_AFTER", def.After),
			Rename:    cc.MayMap("RENAME", def.Rename),
		},
		Lexicon: LexiconOptions{
			Source:   lc.MayString("SOURCE", afinn.DefaultURL),
			CacheDir: lc.MayString("CACHE_DIR", ""),
			Timeout:  lc.MayDuration("TIMEOUT", 30*time.Second),
			MaxAge:   lc.MayDuration("MAX_AGE", 24*time.Hour),
		},
	}
}

// Validate checks the column and lexicon settings. Run paths are checked when a run starts
func (o Options) Validate() error {
	if err := bind.ValidateStruct(o.Columns); err != nil {
		return err
	}
	return bind.ValidateStruct(o.Lexicon)
}
