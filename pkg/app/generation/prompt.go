package generation

import (
	"fmt"
	"strings"
)

const baseSystemPrompt = "Tu es un expert en création de contenu pour les médias sociaux et le marketing digital."

const replyFormat = `

Réponds au format JSON suivant:
` + "```json" + `
{
    "content": "Le contenu principal généré",
    "variants": ["Variante 1", "Variante 2"],
    "hashtags": ["#hashtag1", "#hashtag2"],
    "title": "Titre suggéré (si applicable)",
    "summary": "Bref résumé du contenu"
}
` + "```\n"

var specialties = map[ContentType]string{
	LinkedInPost:       "Tu es spécialisé dans la création de posts LinkedIn professionnels et engageants.",
	TwitterPost:        "Tu es spécialisé dans la création de tweets concis et attrayants.",
	BlogArticle:        "Tu es spécialisé dans la rédaction d'articles de blog informatifs et bien structurés.",
	Newsletter:         "Tu es spécialisé dans la rédaction de newsletters claires et engageantes.",
	Email:              "Tu es spécialisé dans la rédaction d'emails marketing efficaces.",
	ProductDescription: "Tu es spécialisé dans la rédaction de fiches produit convaincantes.",
	PressRelease:       "Tu es spécialisé dans la rédaction de communiqués de presse factuels.",
}

func systemPrompt(p *Parameters) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)
	if s, ok := specialties[p.ContentType]; ok {
		b.WriteString(" ")
		b.WriteString(s)
	}
	if p.Tone != "" {
		fmt.Fprintf(&b, " Le contenu doit avoir une tonalité %s.", p.Tone)
	}
	return b.String()
}

func userPrompt(p *Parameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Génère un contenu de type %s sur le sujet suivant: %s", p.ContentType, p.Prompt)

	var constraints []string
	if len(p.Keywords) > 0 {
		constraints = append(constraints, "Inclure les mots-clés suivants: "+strings.Join(p.Keywords, ", "))
	}
	if p.MaxLength > 0 {
		constraints = append(constraints, fmt.Sprintf("Longueur maximale: %d caractères", p.MaxLength))
	}
	if p.TargetAudience != "" {
		constraints = append(constraints, "Public cible: "+p.TargetAudience)
	}
	if p.IncludeHashtags {
		constraints = append(constraints, "Inclure des hashtags pertinents")
	}
	if p.IncludeEmojis {
		constraints = append(constraints, "Utiliser des emojis appropriés")
	}
	if p.Language != "" {
		constraints = append(constraints, "Langue: "+p.Language)
	}
	if len(p.References) > 0 {
		constraints = append(constraints, "Mentionner les sources suivantes: "+strings.Join(p.References, ", "))
	}
	if len(constraints) > 0 {
		b.WriteString("\n\nContraintes:\n- ")
		b.WriteString(strings.Join(constraints, "\n- "))
	}
	b.WriteString(replyFormat)
	return b.String()
}
