package generation

import (
	"fmt"
	"strings"
)

const mockProvider = "mock"

var mockTemplates = map[ContentType]string{
	LinkedInPost:       "Ceci est un exemple de post LinkedIn sur %s. #professionnel #carrière",
	TwitterPost:        "Tweet d'exemple sur %s! #sujet #exemple",
	BlogArticle:        "# Article de Blog sur %s\n\nCeci est une introduction...\n\n## Point 1\n\nContenu...",
	Newsletter:         "Newsletter: Les dernières nouvelles sur %s\n\nChers abonnés,\n\nAujourd'hui nous explorons...",
	Email:              "Objet: Information sur %s\n\nBonjour,\n\nJe vous contacte au sujet de...",
	ProductDescription: "Découvrez notre produit lié à %s. Caractéristiques: ...",
}

// mockReply stands in for a model when no provider is configured.
func mockReply(p *Parameters) *reply {
	tpl, ok := mockTemplates[p.ContentType]
	if !ok {
		tpl = "Contenu généré pour le sujet: %s"
	}

	hashtags := []string{"#exemple", "#test"}
	for _, kw := range p.Keywords {
		hashtags = append(hashtags, "#"+strings.ReplaceAll(strings.ToLower(kw), " ", ""))
	}

	r := &reply{
		Content: fmt.Sprintf(tpl, p.Prompt),
		Variants: []string{
			fmt.Sprintf(tpl, p.Prompt+" (variante 1)"),
			fmt.Sprintf(tpl, p.Prompt+" (variante 2)"),
		},
		Hashtags: hashtags,
		Metadata: map[string]interface{}{"mock": true},
	}
	switch p.ContentType {
	case BlogArticle, Newsletter, Email:
		r.Title = "Contenu sur " + p.Prompt
	}
	switch p.ContentType {
	case BlogArticle, Newsletter:
		r.Summary = "Résumé du contenu généré sur " + p.Prompt
	}
	return r
}
