package photos

// fallbackPhotoID distinguishes the placeholder from real provider results.
const fallbackPhotoID = "fallback"

// FallbackCandidate returns the fixed scenic placeholder shown when the photo
// pipeline fails, so the image slot is never empty. Attribution is fixed too.
func FallbackCandidate() Candidate {
	return Candidate{
		ID: fallbackPhotoID,
		URLs: CandidateURLs{
			Regular: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1200&h=800&fit=crop",
			Small:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=600&h=400&fit=crop",
			Full:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		},
		Photographer: Photographer{
			Name:       "Unsplash",
			ProfileURL: "https://unsplash.com",
		},
		Description:    "Beautiful scenic landscape",
		AltDescription: "Scenic mountain landscape",
	}
}
