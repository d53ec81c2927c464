package dto

// UpdateProfileRequest for PUT /api/users/:id (partial updates allowed)
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Location        *string `json:"location,omitempty"`
}

// ToUpdates builds the column map for the profile update; the user id is
// never among the updatable columns.
func (d UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if d.FirstName != nil {
		updates["first_name"] = *d.FirstName
	}
	if d.LastName != nil {
		updates["last_name"] = *d.LastName
	}
	if d.ProfileImageURL != nil {
		updates["profile_image_url"] = *d.ProfileImageURL
	}
	if d.Bio != nil {
		updates["bio"] = *d.Bio
	}
	if d.Location != nil {
		updates["location"] = *d.Location
	}
	return updates
}

// UserStatsResponse for GET /api/users/:id/stats. Followers is a constant 0,
// there is no follow graph in the data model yet.
type UserStatsResponse struct {
	BooksRead      int64 `json:"books_read"`
	ReviewsWritten int64 `json:"reviews_written"`
	ToReadList     int64 `json:"to_read_list"`
	Followers      int64 `json:"followers"`
}
