package models

// BlogModel is a single blog post.
type BlogModel struct {
	Base          `bson:",inline"`
	Title         string   `json:"title"   bson:"title"`
	Content       string   `json:"content" bson:"content"`
	Excerpt       string   `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	Slug          string   `json:"slug"      bson:"slug"`
	Published     bool     `json:"published" bson:"published"`
	Author        string   `json:"author,omitempty" bson:"author,omitempty"`
	Tags          []string `json:"tags"             bson:"tags,omitempty"`
	FeaturedImage string   `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
	ImageAssetID  string   `json:"-" bson:"imageAssetId,omitempty"`
	ReadCount     int64    `json:"readCount" bson:"readCount"`
}

// CollectionBlogs is the MongoDB collection name for BlogModel.
const CollectionBlogs = "blogs"
