package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

func TestMediaCard(t *testing.T) {
	test.NewApp()
	loc := i18n.NewLocalization()

	item := model.MediaItem{
		Title:     "Laugh at\nMy Pain",
		Thumbnail: "https://img.example/pain.jpg",
		Authors: []model.Author{
			{Name: "Kevin Hart", PictureURL: "https://img.example/kevin.jpg"},
			{Name: " ", PictureURL: "https://img.example/guest.jpg"},
		},
		Others: model.MediaStats{Views: model.ParseViewCount("1.1K")},
	}
	card := NewMediaCard(item, loc)

	assert.Equal(t, "Laugh at My Pain", card.titleLabel.Text)
	assert.Len(t, card.authorNames, 2)
	assert.Equal(t, "Kevin Hart", card.authorNames[0].Text)
	assert.Equal(t, "Unknown author", card.authorNames[1].Text)
	assert.Equal(t, IconViews+" 1.1K views", card.viewsLabel.Text)

	targets := card.ImageTargets()
	assert.Len(t, targets, 3, "thumbnail plus one picture per author")
	assert.Equal(t, item.Thumbnail, targets[0].URL)
	assert.Equal(t, item.Authors[1].PictureURL, targets[2].URL)

	res := fyne.NewStaticResource("guest.png", []byte{1})
	targets[2].Apply(res)
	assert.Equal(t, res, card.avatars[1].Resource)

	assert.NotPanics(t, func() { card.SetAvatar(5, res) })
}

func TestMediaCard_NoAuthors(t *testing.T) {
	test.NewApp()
	card := NewMediaCard(model.MediaItem{Title: "solo"}, i18n.NewLocalization())

	assert.Empty(t, card.authorNames)
	assert.Len(t, card.ImageTargets(), 1)
	assert.Equal(t, IconViews+" "+i18n.DashPlaceholder+" views", card.viewsLabel.Text)
}

func TestMediaCard_Renders(t *testing.T) {
	test.NewApp()
	card := NewMediaCard(mediaItem("rendered", 1100, "Ann"), i18n.NewLocalization())
	w := test.NewWindow(card)
	defer w.Close()

	assert.Equal(t, IconViews+" 1,100 views", card.viewsLabel.Text)
	assert.True(t, card.MinSize().Width >= CardWidth)
}
