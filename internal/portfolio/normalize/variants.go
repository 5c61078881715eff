package normalize

// Key names seen in the store for each logical field, in priority order.
// Single-value fields take the first non-empty match; list fields on the
// detail record concatenate every variant in this order.
var (
	projectTitleKeys       = []string{"Title", "title"}
	projectDescriptionKeys = []string{"Description", "description"}
	projectLinkKeys        = []string{"Link", "link"}
	projectTechStackKeys   = []string{"TechStack", "techStack"}

	certificateTitleKeys = []string{"Title", "title"}
	certificateImageKeys = []string{"Img", "img", "Image", "image"}

	detailTitleKeys       = []string{"title", "Title"}
	detailDescriptionKeys = []string{"description", "Description"}
	detailGithubKeys      = []string{"github", "Github"}
	// "TeckStack", "TeckState" and "Teckstack" are misspellings that exist in
	// older documents.
	detailTechStackKeys        = []string{"techStack", "TechStack", "TeckStack", "TeckState", "Teckstack"}
	detailResponsibilitiesKeys = []string{"responsibilities", "Responsibilities", "Responsibilities "}
)

const (
	DefaultProjectTitle       = "Untitled"
	DefaultProjectDescription = "No description available"
	DefaultLink               = "#"

	DefaultCertificateTitle = "Untitled Certificate"
	DefaultCertificateImage = "/fallback-certificate.png"

	DefaultDetailTitle       = "Untitled Project"
	DefaultDetailDescription = ""
)
