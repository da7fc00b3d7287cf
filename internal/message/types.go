package message

// Kind identifies one of the supported message shapes.
type Kind string

const (
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindLink     Kind = "link"
	KindImage    Kind = "image"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindText, KindMarkdown, KindLink, KindImage}

// TextBody is the payload of text and markdown messages.
type TextBody struct {
	Content string `json:"content"`
}

// LinkBody is the payload of a link card. Desc is sent as "text".
type LinkBody struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Desc   string `json:"text"`
	PicURL string `json:"picurl"`
}

// ImageBody is the payload of an image message.
type ImageBody struct {
	Base64 string `json:"base64"`
	MD5    string `json:"md5"`
}

// Message is a tagged union: exactly one body matching Kind is set.
type Message struct {
	Kind     Kind
	Text     *TextBody
	Markdown *TextBody
	Link     *LinkBody
	Image    *ImageBody
}
