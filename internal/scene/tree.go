package scene

func light() Element {
	return Element{Type: ElementLight}
}

func toggle(class SizeClass) Element {
	return Element{Type: ElementToggle, Size: DefaultSize(class), SizeClass: class}
}

// DefaultSize is the travel width used for a size class when none is given.
func DefaultSize(class SizeClass) int {
	switch class {
	case SizeLarge:
		return 110
	case SizeMedium:
		return 95
	default:
		return 70
	}
}

// Tree returns the built-in nine-level tree.
func Tree() *Scene {
	return &Scene{
		Version: CurrentVersion,
		Name:    "tree",
		Rows: []Row{
			{Elements: []Element{light()}},
			{Elements: []Element{light(), light()}},
			{Elements: []Element{toggle(SizeSmall), light()}},
			{Elements: []Element{light(), light(), toggle(SizeSmall)}},
			{Elements: []Element{light(), toggle(SizeLarge), light()}},
			{Elements: []Element{toggle(SizeSmall), light(), toggle(SizeSmall), light()}},
			{Elements: []Element{light(), toggle(SizeMedium), light(), light(), light()}},
			{Elements: []Element{light(), light(), light(), light(), toggle(SizeLarge), light()}},
			{Elements: []Element{toggle(SizeSmall), light(), light(), light(), light(), toggle(SizeMedium)}},
		},
	}
}
