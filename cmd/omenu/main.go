// Command omenu inspects, validates, and prices OpenMenu documents and
// converts order intents between their URL and compact wire forms.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/openmenu/omenu"
	"github.com/openmenu/omenu/codec"
	"github.com/openmenu/omenu/i18n"
	"github.com/openmenu/omenu/qr"
)

var lang string

var rootCmd = &cobra.Command{
	Use:   "omenu",
	Short: "Work with OpenMenu documents",
	Long:  "omenu validates menu documents, resolves customizations into prices, generates starter templates, and encodes/decodes omenu:// links.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		i18n.SetLanguage(lang)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a document against the conformance rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		issues := omenu.Validate(doc)
		for _, is := range issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (%s)\n",
				is.Severity, is.Path, i18n.T(is.Code, stringParams(is.Params)), is.Code)
		}
		if issues.HasErrors() {
			return fmt.Errorf("%d issue(s), document is not conformant", len(issues))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var priceItemID string

var priceCmd = &cobra.Command{
	Use:   "price <file>",
	Short: "Resolve selections and print effective prices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		for i := range doc.Items {
			it := &doc.Items[i]
			if priceItemID != "" && it.ID != priceItemID {
				continue
			}
			priced, err := omenu.ResolveAndPrice(it, it.SelectedCustomizations)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s unit %.2f %s  total %.2f %s (x%d)\n",
				it.ID, priced.UnitPrice, priced.Currency,
				priced.TotalPrice, priced.Currency, priced.Quantity)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "document total: %.2f\n", doc.CalculateTotalPrice())
		return nil
	},
}

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Encode and decode omenu:// links",
}

var (
	urlAction   string
	urlVendor   string
	urlLocation string
	urlItem     string
	urlPreset   string
)

var urlEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build an omenu:// link from its parts",
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := codec.EncodeURL(codec.OrderIntent{
			Action:     codec.Action(urlAction),
			VendorID:   urlVendor,
			LocationID: urlLocation,
			ItemID:     urlItem,
			PresetID:   urlPreset,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

var urlDecodeCmd = &cobra.Command{
	Use:   "decode <url>",
	Short: "Parse an omenu:// link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intent, err := codec.DecodeURL(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(map[string]string{
			"action":   string(intent.Action),
			"vendor":   intent.VendorID,
			"location": intent.LocationID,
			"item":     intent.ItemID,
			"preset":   intent.PresetID,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var templateOut string

var templateCmd = &cobra.Command{
	Use:   "template <vendor-type>",
	Short: "Generate a starter document (restaurant, cafe, fast_food, coffee_shop, pizzeria)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := omenu.Template(args[0])
		if err != nil {
			return err
		}
		data, err := doc.MarshalIndent()
		if err != nil {
			return err
		}
		if templateOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		return os.WriteFile(templateOut, data, 0o644)
	},
}

var (
	qrOut  string
	qrSize int
)

var qrCmd = &cobra.Command{
	Use:   "qr <file>",
	Short: "Render a document's deep link as a QR code PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		png, err := qr.ForDocument(qr.PNGGenerator{Size: qrSize}, doc)
		if err != nil {
			return err
		}
		return os.WriteFile(qrOut, png, 0o644)
	},
}

func loadDocument(path string) (*omenu.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return omenu.ParseYAML(data)
	default:
		return omenu.Parse(data)
	}
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "message language (en, ja)")

	priceCmd.Flags().StringVar(&priceItemID, "item", "", "price only this item")

	urlEncodeCmd.Flags().StringVar(&urlAction, "action", "order", "link action (view, order, customize, share)")
	urlEncodeCmd.Flags().StringVar(&urlVendor, "vendor", "", "vendor id")
	urlEncodeCmd.Flags().StringVar(&urlLocation, "location", "", "location id")
	urlEncodeCmd.Flags().StringVar(&urlItem, "item", "", "item id")
	urlEncodeCmd.Flags().StringVar(&urlPreset, "preset", "", "preset customization bundle id")
	urlCmd.AddCommand(urlEncodeCmd, urlDecodeCmd)

	templateCmd.Flags().StringVarP(&templateOut, "output", "o", "", "write to file instead of stdout")

	qrCmd.Flags().StringVarP(&qrOut, "output", "o", "qr.png", "output PNG path")
	qrCmd.Flags().IntVar(&qrSize, "size", 0, "image edge in pixels")

	rootCmd.AddCommand(validateCmd, priceCmd, urlCmd, templateCmd, qrCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
