package media

// ContentProber inspects file content to determine a category. Probing is
// best-effort: an error or CategoryUnknown result simply means the caller
// falls back to extension lookup.
type ContentProber interface {
	Probe(path string) (Category, error)
}

// Classifier assigns a category to every file it is handed.
type Classifier struct {
	prober ContentProber
}

// NewClassifier builds a classifier around the given content prober. A nil
// prober degrades to extension-only classification in both modes.
func NewClassifier(prober ContentProber) *Classifier {
	return &Classifier{prober: prober}
}

// Classify determines the category for path. In fast mode it trusts the file
// extension and never touches content. In accurate mode it probes content
// first and falls back to the extension when the probe errors or is
// inconclusive. Every path classifies; the worst case is CategoryUnknown.
func (c *Classifier) Classify(path string, fast bool) Category {
	if !fast && c.prober != nil {
		if cat, err := c.prober.Probe(path); err == nil && cat != CategoryUnknown {
			return cat
		}
	}
	return CategoryForExtension(path)
}
