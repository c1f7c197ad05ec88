package module

import (
	"freightdesk/internal/core/inquiry"
	"freightdesk/internal/platform/config"
)

// Options controls the inquiry module
type Options struct {
	DefaultVariant    string
	MaxContainerLines int
	VocabPath         string
	MaxBodyBytes      int64
}

// FromConfig reads with the CORE_INQUIRY_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_INQUIRY_")
	return Options{
		DefaultVariant:    c.MayEnum("DEFAULT_VARIANT", inquiry.VariantFCL, inquiry.VariantFCL, inquiry.VariantLCL),
		MaxContainerLines: c.MayIntRange("MAX_CONTAINER_LINES", 5, 0, 100),
		VocabPath:         c.MayString("VOCAB_PATH", ""),
		MaxBodyBytes:      int64(c.MayIntRange("MAX_BODY_BYTES", 64<<10, 1<<10, 8<<20)),
	}
}

// merge applies the non-zero fields of o over base
func (o Options) merge(base Options) Options {
	if o.DefaultVariant != "" {
		base.DefaultVariant = o.DefaultVariant
	}
	if o.MaxContainerLines != 0 {
		base.MaxContainerLines = o.MaxContainerLines
	}
	if o.VocabPath != "" {
		base.VocabPath = o.VocabPath
	}
	if o.MaxBodyBytes != 0 {
		base.MaxBodyBytes = o.MaxBodyBytes
	}
	return base
}
