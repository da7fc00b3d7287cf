package message

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Text builds a plain text message.
func Text(content string) Message {
	return Message{Kind: KindText, Text: &TextBody{Content: content}}
}

// Markdown builds a markdown message.
func Markdown(content string) Message {
	return Message{Kind: KindMarkdown, Markdown: &TextBody{Content: content}}
}

// Link builds a link card message.
func Link(title, url, desc, picURL string) Message {
	return Message{Kind: KindLink, Link: &LinkBody{Title: title, URL: url, Desc: desc, PicURL: picURL}}
}

// Image builds an image message from base64 data and its md5 digest.
func Image(base64, md5 string) Message {
	return Message{Kind: KindImage, Image: &ImageBody{Base64: base64, MD5: md5}}
}

// ParseKind matches s against the known kinds, ignoring case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Build maps a kind tag and its content into a Message.
// text and markdown take a string; link and image take a JSON object
// (map[string]any) with the fields named in their body types.
func Build(kind string, content any) (Message, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Message{}, err
	}

	switch k {
	case KindText, KindMarkdown:
		s, ok := content.(string)
		if !ok {
			return Message{}, fmt.Errorf("%w: %s content must be a string", ErrInvalidContent, k)
		}
		if k == KindText {
			return Text(s), nil
		}
		return Markdown(s), nil

	case KindLink:
		f, err := newFields(k, content)
		if err != nil {
			return Message{}, err
		}
		title, err := f.required("title")
		if err != nil {
			return Message{}, err
		}
		url, err := f.required("url")
		if err != nil {
			return Message{}, err
		}
		desc, err := f.optional("desc")
		if err != nil {
			return Message{}, err
		}
		picURL, err := f.optional("picurl")
		if err != nil {
			return Message{}, err
		}
		return Link(title, url, desc, picURL), nil

	case KindImage:
		f, err := newFields(k, content)
		if err != nil {
			return Message{}, err
		}
		b64, err := f.required("base64")
		if err != nil {
			return Message{}, err
		}
		sum, err := f.required("md5")
		if err != nil {
			return Message{}, err
		}
		return Image(b64, sum), nil
	}

	return Message{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// MarshalJSON renders the webhook wire shape: {"msgtype": kind, kind: body}.
func (m Message) MarshalJSON() ([]byte, error) {
	w := wire{MsgType: m.Kind}
	switch m.Kind {
	case KindText:
		w.Text = m.Text
	case KindMarkdown:
		w.Markdown = m.Markdown
	case KindLink:
		w.Link = m.Link
	case KindImage:
		w.Image = m.Image
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, m.Kind)
	}
	if w.Text == nil && w.Markdown == nil && w.Link == nil && w.Image == nil {
		return nil, fmt.Errorf("%w: %s body is empty", ErrInvalidContent, m.Kind)
	}
	return json.Marshal(w)
}

// wire keeps msgtype ahead of the body in the encoded object.
type wire struct {
	MsgType  Kind       `json:"msgtype"`
	Text     *TextBody  `json:"text,omitempty"`
	Markdown *TextBody  `json:"markdown,omitempty"`
	Link     *LinkBody  `json:"link,omitempty"`
	Image    *ImageBody `json:"image,omitempty"`
}

type fields struct {
	kind Kind
	m    map[string]any
}

func newFields(k Kind, content any) (fields, error) {
	m, ok := content.(map[string]any)
	if !ok {
		return fields{}, fmt.Errorf("%w: %s content must be an object", ErrInvalidContent, k)
	}
	return fields{kind: k, m: m}, nil
}

func (f fields) required(name string) (string, error) {
	v, ok := f.m[name]
	if !ok || v == nil {
		return "", &MissingFieldError{Kind: f.kind, Field: name}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s field %q must be a string", ErrInvalidContent, f.kind, name)
	}
	return s, nil
}

func (f fields) optional(name string) (string, error) {
	v, ok := f.m[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s field %q must be a string", ErrInvalidContent, f.kind, name)
	}
	return s, nil
}
