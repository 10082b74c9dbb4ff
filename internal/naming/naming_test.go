package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		model string
		want  Names
	}{
		{
			model: "Product",
			want: Names{
				Model:       "Product",
				Plural:      "Products",
				PluralCamel: "products",
				PluralLower: "products",
				Lower:       "product",
				Variable:    "product",
				Kebab:       "product",
				Route:       "products",
			},
		},
		{
			model: "BlogPost",
			want: Names{
				Model:       "BlogPost",
				Plural:      "BlogPosts",
				PluralCamel: "blogPosts",
				PluralLower: "blogposts",
				Lower:       "blogpost",
				Variable:    "blogPost",
				Kebab:       "blog-post",
				Route:       "blog_posts",
			},
		},
		{
			model: "Category",
			want: Names{
				Model:       "Category",
				Plural:      "Categories",
				PluralCamel: "categories",
				PluralLower: "categories",
				Lower:       "category",
				Variable:    "category",
				Kebab:       "category",
				Route:       "categories",
			},
		},
		{
			model: "Person",
			want: Names{
				Model:       "Person",
				Plural:      "People",
				PluralCamel: "people",
				PluralLower: "people",
				Lower:       "person",
				Variable:    "person",
				Kebab:       "person",
				Route:       "people",
			},
		},
		{
			model: "Child",
			want: Names{
				Model:       "Child",
				Plural:      "Children",
				PluralCamel: "children",
				PluralLower: "children",
				Lower:       "child",
				Variable:    "child",
				Kebab:       "child",
				Route:       "children",
			},
		},
		{
			model: "Status",
			want: Names{
				Model:       "Status",
				Plural:      "Statuses",
				PluralCamel: "statuses",
				PluralLower: "statuses",
				Lower:       "status",
				Variable:    "status",
				Kebab:       "status",
				Route:       "statuses",
			},
		},
		{
			model: "UserStatus",
			want: Names{
				Model:       "UserStatus",
				Plural:      "UserStatuses",
				PluralCamel: "userStatuses",
				PluralLower: "userstatuses",
				Lower:       "userstatus",
				Variable:    "userStatus",
				Kebab:       "user-status",
				Route:       "user_statuses",
			},
		},
		{
			model: "BlogPerson",
			want: Names{
				Model:       "BlogPerson",
				Plural:      "BlogPeople",
				PluralCamel: "blogPeople",
				PluralLower: "blogpeople",
				Lower:       "blogperson",
				Variable:    "blogPerson",
				Kebab:       "blog-person",
				Route:       "blog_people",
			},
		},
		{
			model: "Quiz",
			want: Names{
				Model:       "Quiz",
				Plural:      "Quizzes",
				PluralCamel: "quizzes",
				PluralLower: "quizzes",
				Lower:       "quiz",
				Variable:    "quiz",
				Kebab:       "quiz",
				Route:       "quizzes",
			},
		},
		{
			model: "Bus",
			want: Names{
				Model:       "Bus",
				Plural:      "Buses",
				PluralCamel: "buses",
				PluralLower: "buses",
				Lower:       "bus",
				Variable:    "bus",
				Kebab:       "bus",
				Route:       "buses",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.model))
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	// Test: same input, same output
	assert.Equal(t, Derive("OrderLine"), Derive("OrderLine"))
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"title":      "Title",
		"first_name": "First name",
		"created_at": "Created at",
		"isActive":   "IsActive",
		"":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}
