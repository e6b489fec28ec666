package tablevec

// NewSuperVectorizer creates a TableVectorizer.
//
// Deprecated: SuperVectorizer is the historical name of this component.
// Use New instead. The constructor emits a deprecation warning through
// the configured logger and is otherwise identical to New.
func NewSuperVectorizer(optFns ...Option) (*TableVectorizer, error) {
	tv, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	tv.logger.Warn("NewSuperVectorizer is deprecated, use New instead")
	return tv, nil
}
