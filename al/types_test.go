package al

import "testing"

func TestFormatSampleSize(t *testing.T) {
	tests := []struct {
		format Enum
		size   int
		ok     bool
	}{
		{FormatMono8, 1, true},
		{FormatMono16, 2, true},
		{FormatStereo8, 2, true},
		{FormatStereo16, 4, true},
		{FormatMonoFloat32, 4, true},
		{FormatStereoFloat32, 8, true},
		{Enum(0x9999), 0, false},
	}

	for _, tt := range tests {
		size, ok := FormatSampleSize(tt.format)
		if size != tt.size || ok != tt.ok {
			t.Errorf("FormatSampleSize(0x%X) = (%d, %v), want (%d, %v)",
				uint32(tt.format), size, ok, tt.size, tt.ok)
		}
	}
}
