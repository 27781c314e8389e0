// Package markup ships default DSFR template bodies for the common blocks.
// Hosts seed them at assembly and override per locale; the markup stays
// minimal and interpolates precomputed presentation facts instead of
// deriving them.
package markup

import "github.com/goliatone/go-blocks/pkg/domain"

const (
	CardCode       = "card"
	AlertCode      = "alert"
	CalloutCode    = "callout"
	QuoteCode      = "quote"
	AccordionsCode = "accordions"
	SeparatorCode  = "separator"
	StepperCode    = "stepper"
	ParagraphCode  = "paragraph"
)

var (
	cardSchema = domain.TemplateSchema{
		Required: []string{"title", "heading_tag", "enlarge_link", "image_classes"},
		Optional: []string{"description", "target_url", "image_url", "image_alt", "top_detail_text", "bottom_detail_text"},
	}
	alertSchema = domain.TemplateSchema{
		Required: []string{"level", "heading_tag"},
		Optional: []string{"title", "description"},
	}
	calloutSchema = domain.TemplateSchema{
		Required: []string{"text", "heading_tag"},
		Optional: []string{"title"},
	}
	quoteSchema = domain.TemplateSchema{
		Required: []string{"quote"},
		Optional: []string{"author_name", "author_title", "color", "image_url"},
	}
	accordionsSchema = domain.TemplateSchema{
		Required: []string{"items"},
		Optional: []string{"title"},
	}
	separatorSchema = domain.TemplateSchema{
		Required: []string{"top_margin", "bottom_margin"},
	}
	stepperSchema = domain.TemplateSchema{
		Required: []string{"title", "total", "current"},
		Optional: []string{"steps"},
	}
	paragraphSchema = domain.TemplateSchema{
		Required: []string{"html"},
	}
)

// Templates returns the default English bodies for the common blocks.
func Templates() []domain.BlockTemplate {
	return []domain.BlockTemplate{
		{
			Code:        CardCode,
			Locale:      "en",
			Description: "DSFR card component",
			Format:      domain.FormatHTML,
			Body:        cardBody,
			Schema:      cardSchema,
			Metadata:    domain.JSONMap{"component": "fr-card"},
		},
		{
			Code:        AlertCode,
			Locale:      "en",
			Description: "DSFR alert component",
			Format:      domain.FormatHTML,
			Body:        alertBody,
			Schema:      alertSchema,
			Metadata:    domain.JSONMap{"component": "fr-alert"},
		},
		{
			Code:        CalloutCode,
			Locale:      "en",
			Description: "DSFR callout component",
			Format:      domain.FormatHTML,
			Body:        calloutBody,
			Schema:      calloutSchema,
			Metadata:    domain.JSONMap{"component": "fr-callout"},
		},
		{
			Code:        QuoteCode,
			Locale:      "en",
			Description: "DSFR quote component",
			Format:      domain.FormatHTML,
			Body:        quoteBody,
			Schema:      quoteSchema,
			Metadata:    domain.JSONMap{"component": "fr-quote"},
		},
		{
			Code:        AccordionsCode,
			Locale:      "en",
			Description: "DSFR accordion group",
			Format:      domain.FormatHTML,
			Body:        accordionsBody,
			Schema:      accordionsSchema,
			Metadata:    domain.JSONMap{"component": "fr-accordion"},
		},
		{
			Code:        SeparatorCode,
			Locale:      "en",
			Description: "Horizontal rule with spacing",
			Format:      domain.FormatHTML,
			Body:        separatorBody,
			Schema:      separatorSchema,
			Metadata:    domain.JSONMap{"component": "hr"},
		},
		{
			Code:        StepperCode,
			Locale:      "en",
			Description: "DSFR stepper component",
			Format:      domain.FormatHTML,
			Body:        stepperBody,
			Schema:      stepperSchema,
			Metadata:    domain.JSONMap{"component": "fr-stepper"},
		},
		{
			Code:        ParagraphCode,
			Locale:      "en",
			Description: "Sanitized rich text passthrough",
			Format:      domain.FormatHTML,
			Body:        paragraphBody,
			Schema:      paragraphSchema,
			Metadata:    domain.JSONMap{"component": "richtext"},
		},
	}
}

const cardBody = `<div class="fr-card{% if orientation == "horizontal" %} fr-card--horizontal{% endif %}{% if enlarge_link %} fr-enlarge-link{% endif %}{% if grey_background %} fr-card--grey{% endif %}{% if no_background %} fr-card--no-background{% endif %}{% if no_border %} fr-card--no-border{% endif %}{% if shadow %} fr-card--shadow{% endif %}">
  <div class="fr-card__body">
    <div class="fr-card__content">
      <{{ heading_tag }} class="fr-card__title">
        {% if target_url %}<a href="{{ target_url }}">{{ title }}</a>{% else %}{{ title }}{% endif %}
      </{{ heading_tag }}>
      {% if description %}<p class="fr-card__desc">{{ description|safe }}</p>{% endif %}
      {% if top_detail_text %}<p class="fr-card__detail{% if top_detail_icon %} {{ top_detail_icon }}{% endif %}">{{ top_detail_text }}</p>{% endif %}
      {% if bottom_detail_text %}<p class="fr-card__end fr-card__detail{% if bottom_detail_icon %} {{ bottom_detail_icon }}{% endif %}">{{ bottom_detail_text }}</p>{% endif %}
    </div>
  </div>
  {% if image_url %}<div class="fr-card__header">
    <div class="fr-card__img">
      <img class="{{ image_classes }}" src="{{ asset_url(image_url) }}" alt="{{ image_alt }}">
    </div>
  </div>{% endif %}
</div>`

const alertBody = `<div class="fr-alert fr-alert--{{ level }}">
  {% if title %}<{{ heading_tag }} class="fr-alert__title">{{ title }}</{{ heading_tag }}>{% endif %}
  {% if description %}<p>{{ description|safe }}</p>{% endif %}
</div>`

const calloutBody = `<div class="fr-callout">
  {% if title %}<{{ heading_tag }} class="fr-callout__title">{{ title }}</{{ heading_tag }}>{% endif %}
  <p class="fr-callout__text">{{ text|safe }}</p>
</div>`

const quoteBody = `<figure class="fr-quote{% if color %} fr-quote--{{ color }}{% endif %}">
  <blockquote>
    <p>{{ quote }}</p>
  </blockquote>
  <figcaption>
    {% if author_name %}<p class="fr-quote__author">{{ author_name }}</p>{% endif %}
    {% if author_title %}<ul class="fr-quote__source"><li>{{ author_title }}</li></ul>{% endif %}
    {% if image_url %}<div class="fr-quote__image"><img src="{{ asset_url(image_url) }}" class="fr-responsive-img" alt=""></div>{% endif %}
  </figcaption>
</figure>`

const accordionsBody = `<div class="fr-accordions-group">
  {% if title %}<h2>{{ title }}</h2>{% endif %}
  {% for item in items %}<section class="fr-accordion">
    <h3 class="fr-accordion__title">
      <button class="fr-accordion__btn" aria-expanded="false" aria-controls="accordion-{{ forloop.Counter }}">{{ item.title }}</button>
    </h3>
    <div class="fr-collapse" id="accordion-{{ forloop.Counter }}">{{ item.content|safe }}</div>
  </section>{% endfor %}
</div>`

const separatorBody = `<hr class="fr-mt-{{ top_margin }}w fr-mb-{{ bottom_margin }}w">`

const stepperBody = `<div class="fr-stepper">
  <h2 class="fr-stepper__title">
    {{ title }}
    <span class="fr-stepper__state">{{ current }}/{{ total }}</span>
  </h2>
  <div class="fr-stepper__steps" data-fr-current-step="{{ current }}" data-fr-steps="{{ total }}"></div>
  {% if steps %}<ol class="fr-stepper__details">
    {% for step in steps %}<li>{{ step.title }}{% if step.detail %}: {{ step.detail }}{% endif %}</li>{% endfor %}
  </ol>{% endif %}
</div>`

const paragraphBody = `{{ html|safe }}`
