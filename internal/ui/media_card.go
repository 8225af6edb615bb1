package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

// MediaCard renders one media item: thumbnail, title, authors and views
type MediaCard struct {
	widget.BaseWidget

	item         model.MediaItem
	localization *i18n.Localization

	// UI components
	background  *canvas.Rectangle
	thumbnail   *canvas.Image
	titleLabel  *widget.Label
	authorsBox  *fyne.Container
	avatars     []*canvas.Image
	authorNames []*widget.Label
	viewsLabel  *widget.Label
}

// NewMediaCard creates a new card widget
func NewMediaCard(item model.MediaItem, localization *i18n.Localization) *MediaCard {
	c := &MediaCard{
		item:         item,
		localization: localization,
	}
	c.ExtendBaseWidget(c)
	c.createUI()
	c.updateFromItem()
	return c
}

// Item returns the media item shown by the card
func (c *MediaCard) Item() model.MediaItem {
	return c.item
}

// SetThumbnail replaces the thumbnail placeholder
func (c *MediaCard) SetThumbnail(res fyne.Resource) {
	c.thumbnail.Resource = res
	c.thumbnail.Image = nil
	c.thumbnail.Refresh()
}

// SetAvatar replaces the picture of the i-th author
func (c *MediaCard) SetAvatar(i int, res fyne.Resource) {
	if i < 0 || i >= len(c.avatars) {
		return
	}
	c.avatars[i].Resource = res
	c.avatars[i].Refresh()
}

// ImageTargets lists the images of this card for a ThumbnailLoader
func (c *MediaCard) ImageTargets() []ImageTarget {
	targets := []ImageTarget{{URL: c.item.Thumbnail, Apply: c.SetThumbnail}}
	for i, a := range c.item.Authors {
		i := i
		targets = append(targets, ImageTarget{
			URL:   a.PictureURL,
			Apply: func(res fyne.Resource) { c.SetAvatar(i, res) },
		})
	}
	return targets
}

// Retranslate refreshes the localized texts
func (c *MediaCard) Retranslate() {
	c.updateFromItem()
}

func (c *MediaCard) createUI() {
	c.background = canvas.NewRectangle(cardColor())
	c.background.CornerRadius = theme.InputRadiusSize() * 2

	c.thumbnail = canvas.NewImageFromResource(theme.MediaVideoIcon())
	c.thumbnail.FillMode = canvas.ImageFillContain
	c.thumbnail.SetMinSize(fyne.NewSize(CardWidth, ThumbnailHeight))

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Wrapping = fyne.TextWrapWord
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.authorsBox = container.NewVBox()
	for range c.item.Authors {
		avatar := canvas.NewImageFromResource(theme.AccountIcon())
		avatar.FillMode = canvas.ImageFillContain
		avatar.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))
		name := widget.NewLabel("")
		name.Truncation = fyne.TextTruncateEllipsis

		c.avatars = append(c.avatars, avatar)
		c.authorNames = append(c.authorNames, name)
		c.authorsBox.Add(container.NewBorder(nil, nil, avatar, nil, name))
	}

	c.viewsLabel = widget.NewLabel("")
	c.viewsLabel.Importance = widget.LowImportance
}

// updateFromItem updates the labels from the item
func (c *MediaCard) updateFromItem() {
	c.titleLabel.SetText(c.item.GetDisplayTitle())

	for i, a := range c.item.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			name = c.localization.GetText(i18n.KeyUnknownAuthor)
		}
		c.authorNames[i].SetText(name)
	}

	c.viewsLabel.SetText(IconViews + " " + c.localization.FormatViews(c.item.Others.Views))
}

// CreateRenderer implements fyne.Widget
func (c *MediaCard) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewVBox(
		c.thumbnail,
		c.titleLabel,
		c.authorsBox,
		c.viewsLabel,
	)
	return widget.NewSimpleRenderer(container.NewStack(c.background, container.NewPadded(body)))
}
