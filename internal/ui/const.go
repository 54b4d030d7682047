package ui

const (
	//longing for https://github.com/charmbracelet/bubbles/pull/240
	UPPER_20 = 0.8

	DEFAULT_WIDTH  = 80
	DEFAULT_HEIGHT = 24

	// title 1 + add hints 1 + status 1 + help 1 + gaps 2
	CARDS_VERTICAL_MARGIN = 6
	CARD_MAX_WIDTH        = 72

	LABEL_CHAR_LIMIT = 256
)
