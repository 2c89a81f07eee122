package models

// Photo pairs a served URL with the remote asset id needed to delete it.
// AssetID is empty for media that never went through the remote store.
type Photo struct {
	URL     string `json:"url"     bson:"url"`
	AssetID string `json:"-"       bson:"assetId,omitempty"`
}

// ProjectModel is a showcased project.
type ProjectModel struct {
	Base          `bson:",inline"`
	Name          string   `json:"name" bson:"name"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	LiveLink      string   `json:"liveLink"     bson:"liveLink"`
	FrontendCode  string   `json:"frontendCode" bson:"frontendCode"`
	BackendCode   string   `json:"backendCode"  bson:"backendCode"`
	VideoLink     string   `json:"videoLink,omitempty" bson:"videoLink,omitempty"`
	Technologies  []string `json:"technologies"        bson:"technologies,omitempty"`
	TimelinePhoto *Photo   `json:"timelinePhoto,omitempty" bson:"timelinePhoto,omitempty"`
	OtherPhotos   []Photo  `json:"otherPhotos"             bson:"otherPhotos,omitempty"`
}

// AssetIDs collects every remote asset id the project owns.
func (p *ProjectModel) AssetIDs() []string {
	var ids []string
	if p.TimelinePhoto != nil && p.TimelinePhoto.AssetID != "" {
		ids = append(ids, p.TimelinePhoto.AssetID)
	}
	for _, ph := range p.OtherPhotos {
		if ph.AssetID != "" {
			ids = append(ids, ph.AssetID)
		}
	}
	return ids
}

// CollectionProjects is the MongoDB collection name for ProjectModel.
const CollectionProjects = "projects"
