package converter

// Converter maps a persisted entity to its response shape. Implementations
// are pure and never fail; a malformed entity is a programming error.
type Converter[S any, D any] interface {
	ToResponse(source *S) D
}

// ToResponses converts a slice of entities, never returning nil.
func ToResponses[S any, D any](conv Converter[S, D], items []*S) []D {
	responses := make([]D, len(items))
	for i, item := range items {
		responses[i] = conv.ToResponse(item)
	}
	return responses
}
