// File: services/storage/storage_test.go
package storage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned image delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/appointments/receipts/gcash-01.jpg",
			want: "appointments/receipts/gcash-01",
		},
		{
			name: "unversioned URL",
			url:  "https://res.cloudinary.com/demo/image/upload/appointments/receipts/gcash-01.png",
			want: "appointments/receipts/gcash-01",
		},
		{
			name: "raw resource without extension",
			url:  "https://res.cloudinary.com/demo/raw/upload/v1/appointments/notes/notes-final",
			want: "appointments/notes/notes-final",
		},
		{
			name: "no upload segment",
			url:  "https://example.com/files/gcash-01.jpg",
			want: "",
		},
		{
			name: "empty previous URL",
			url:  "",
			want: "",
		},
		{
			name: "upload segment with nothing after it",
			url:  "https://res.cloudinary.com/demo/image/upload",
			want: "",
		},
		{
			name: "only a version after upload",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PublicIDFromURL(tc.url); got != tc.want {
				t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}
