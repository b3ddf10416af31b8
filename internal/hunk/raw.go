package hunk

// FromRaw wraps a flat binary into a file with a single code hunk, for
// input that has no hunk structure like ROM dumps or boot blocks.
func FromRaw(data []byte, name string) *File {
	content := make([]byte, len(data))
	copy(content, data)

	return &File{
		Hunks: []*Hunk{
			{
				Type:      Code,
				AllocSize: uint32(len(content)),
				Data:      content,
				Name:      name,
			},
		},
	}
}

// IsExecutable returns whether data starts with the hunk executable magic.
func IsExecutable(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0 && data[1] == 0 && data[2] == IDHeader>>8 && data[3] == IDHeader&0xFF
}
