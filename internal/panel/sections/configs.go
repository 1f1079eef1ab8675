package sections

import (
	"strconv"
	"strings"

	"portfolio-admin/internal/panel/manager"
)

var sortOrder = manager.Field{Name: "sort_order", Kind: manager.Int}

var SkillsConfig = manager.Config{
	Resource: "skills",
	Label:    "skill",
	Fields: []manager.Field{
		{Name: "name", Kind: manager.Text, Required: true},
		{Name: "level", Kind: manager.Int, Required: true},
		{Name: "icon", Kind: manager.Text},
		{Name: "color_from", Kind: manager.Text},
		{Name: "color_to", Kind: manager.Text},
		sortOrder,
	},
	Validate: func(d manager.Draft) []manager.FieldError {
		n, err := strconv.Atoi(strings.TrimSpace(d.Values["level"]))
		if err == nil && (n < 1 || n > 100) {
			return []manager.FieldError{{Field: "level", Message: "must be between 1 and 100"}}
		}
		return nil
	},
}

var TechnologiesConfig = manager.Config{
	Resource: "technologies",
	Label:    "technology",
	Fields: []manager.Field{
		{Name: "name", Kind: manager.Text, Required: true},
		{Name: "bg_color", Kind: manager.Text},
		{Name: "text_color", Kind: manager.Text},
		sortOrder,
	},
}

var CertificationsConfig = manager.Config{
	Resource: "certifications",
	Label:    "certification",
	Fields: []manager.Field{
		{Name: "name", Kind: manager.Text, Required: true},
		{Name: "issuer", Kind: manager.Text, Required: true},
		{Name: "year", Kind: manager.Text},
		{Name: "credential_id", Kind: manager.Text},
		{Name: "icon", Kind: manager.Text},
		sortOrder,
	},
}

var ProductsConfig = manager.Config{
	Resource: "products",
	Label:    "product",
	Fields: []manager.Field{
		{Name: "title", Kind: manager.Text, Required: true},
		{Name: "description", Kind: manager.Text, Required: true},
		{Name: "category", Kind: manager.Text},
		{Name: "users", Kind: manager.Text},
		{Name: "image_url", Kind: manager.Text},
		{Name: "features", Kind: manager.CommaList},
		{Name: "status", Kind: manager.Text},
		{Name: "demo_url", Kind: manager.Text},
		sortOrder,
	},
}

var ProjectsConfig = manager.Config{
	Resource: "projects",
	Label:    "project",
	Fields: []manager.Field{
		{Name: "title", Kind: manager.Text, Required: true},
		{Name: "description", Kind: manager.Text, Required: true},
		{Name: "tech", Kind: manager.CommaList},
		{Name: "category", Kind: manager.Text},
		{Name: "year", Kind: manager.Text},
		{Name: "metrics", Kind: manager.Text},
		{Name: "project_url", Kind: manager.Text},
		sortOrder,
	},
}

var ExperienceConfig = manager.Config{
	Resource: "experience",
	Label:    "experience",
	Fields: []manager.Field{
		{Name: "title", Kind: manager.Text, Required: true},
		{Name: "company", Kind: manager.Text, Required: true},
		{Name: "period", Kind: manager.Text},
		{Name: "location", Kind: manager.Text},
		{Name: "description", Kind: manager.Text},
		{Name: "achievements", Kind: manager.LineList},
		{Name: "skills", Kind: manager.CommaList},
		sortOrder,
	},
}

var EducationConfig = manager.Config{
	Resource: "education",
	Label:    "education",
	Fields: []manager.Field{
		{Name: "degree", Kind: manager.Text, Required: true},
		{Name: "field", Kind: manager.Text},
		{Name: "institution", Kind: manager.Text, Required: true},
		{Name: "location", Kind: manager.Text},
		{Name: "period", Kind: manager.Text},
		{Name: "gpa", Kind: manager.Text},
		{Name: "achievements", Kind: manager.LineList},
		sortOrder,
	},
}
