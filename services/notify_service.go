package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	appcfg "github.com/Surya-k-bot/food-management-system/config"
	"github.com/Surya-k-bot/food-management-system/models"
	"github.com/Surya-k-bot/food-management-system/utils"

	"gorm.io/gorm"
)

// Dispatcher fans alerts out to every configured channel: ops email,
// webhook, and the realtime hub. Every channel is best-effort; failures are
// logged and swallowed so a dead mail server can never fail a menu publish.
type Dispatcher struct {
	cfg    *appcfg.App
	db     *gorm.DB
	hub    *RealtimeHub
	client *http.Client
}

func NewDispatcher(cfg *appcfg.App, db *gorm.DB, hub *RealtimeHub) *Dispatcher {
	return &Dispatcher{
		cfg: cfg,
		db:  db,
		hub: hub,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Notify sends one alert message everywhere. Safe to call anywhere.
func (d *Dispatcher) Notify(message string) {
	if len(d.cfg.NotifyEmailTo) > 0 {
		if err := utils.SendMail(d.cfg, d.cfg.NotifyEmailTo, "CFMS Alert", message); err != nil {
			log.Printf("notify: alert email failed: %v", err)
		}
	}

	if d.cfg.WebhookURL != "" {
		d.postWebhook(message)
	}

	if d.hub != nil {
		d.hub.Broadcast(map[string]any{
			"kind":    "alert",
			"message": message,
		})
	}
}

// NotifyStudentsMenuUpdate mails every active non-staff account that has an
// email address about a freshly published item.
func (d *Dispatcher) NotifyStudentsMenuUpdate(item *models.FoodItem) {
	var emails []string
	err := d.db.Model(&models.User{}).
		Where("is_active = ? AND is_staff = ? AND is_superuser = ? AND email <> ''", true, false, false).
		Pluck("email", &emails).Error
	if err != nil {
		log.Printf("notify: student email lookup failed: %v", err)
		return
	}
	if len(emails) == 0 {
		return
	}

	meal := capitalize(item.Category)
	subject := fmt.Sprintf("%s Menu Update", meal)
	body := fmt.Sprintf(
		"Hello Student,\n\nYour %s menu is ready.\nItem: %s\nQuantity: %d\n\n- CFMS",
		item.Category, item.Name, item.Quantity,
	)
	if err := utils.SendMail(d.cfg, emails, subject, body); err != nil {
		log.Printf("notify: menu update email failed: %v", err)
	}
}

func (d *Dispatcher) postWebhook(message string) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return
	}
	resp, err := d.client.Post(d.cfg.WebhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("notify: webhook POST failed: %v", err)
		return
	}
	resp.Body.Close()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
