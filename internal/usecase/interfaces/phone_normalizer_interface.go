package interfaces

// IPhoneNormalizer turns user typed phone numbers into a canonical form.
// On error the returned string is still usable (trimmed input).
type IPhoneNormalizer interface {
	Normalize(raw string) (string, error)
}
