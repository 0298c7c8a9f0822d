package domain

// PortfolioPatch carries the optional portfolio fields of an update request.
// Nil fields are left untouched by Apply.
type PortfolioPatch struct {
	ProfilePicURL *string            `json:"profile_pic_url,omitempty"`
	Bio           *string            `json:"bio,omitempty"`
	Email         *string            `json:"email,omitempty" validate:"omitempty,email"`
	SocialLinks   *map[string]string `json:"social_links,omitempty"`
	AboutContent  *string            `json:"about_content,omitempty"`
	Projects      *[]Project         `json:"projects,omitempty"`
	Experience    *[]Experience      `json:"experience,omitempty"`
}

// Apply merges the set fields into p.
func (patch PortfolioPatch) Apply(p *Portfolio) {
	if patch.ProfilePicURL != nil {
		p.ProfilePicURL = *patch.ProfilePicURL
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.SocialLinks != nil {
		p.SocialLinks = *patch.SocialLinks
	}
	if patch.AboutContent != nil {
		p.AboutContent = *patch.AboutContent
	}
	if patch.Projects != nil {
		p.Projects = *patch.Projects
	}
	if patch.Experience != nil {
		p.Experience = *patch.Experience
	}
}

// BlogPatch carries the optional blog fields of an update request. Updating
// Content also refreshes ReadingTime; BlogID, CreatedAt, and Author are
// immutable and have no patch fields.
type BlogPatch struct {
	Title            *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content          *string   `json:"content,omitempty"`
	Slug             *string   `json:"slug,omitempty"`
	FeaturedImageURL *string   `json:"featured_image_url,omitempty"`
	Tags             *[]string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Category         *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	SEODescription   *string   `json:"seo_description,omitempty" validate:"omitempty,max=300"`
}

// Apply merges the set fields into b.
func (patch BlogPatch) Apply(b *Blog) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Content != nil {
		b.Content = *patch.Content
		b.ReadingTime = ReadingTime(b.Content)
	}
	if patch.Slug != nil {
		b.Slug = *patch.Slug
	}
	if patch.FeaturedImageURL != nil {
		b.FeaturedImageURL = *patch.FeaturedImageURL
	}
	if patch.Tags != nil {
		b.Tags = *patch.Tags
	}
	if patch.Category != nil {
		b.Category = *patch.Category
	}
	if patch.SEODescription != nil {
		b.SEODescription = *patch.SEODescription
	}
}
