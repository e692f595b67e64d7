package media

// Category is the coarse classification assigned to every walked file.
// It is produced exactly once per file and never revised downstream.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryImage
	CategoryVideo
)

func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	default:
		return "unknown"
	}
}
