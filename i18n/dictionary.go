package i18n

// Dictionary is the full label set for all three document kinds in one
// language. Instances are built once by ForLanguage and treated as
// immutable by the layout pass.
type Dictionary struct {
	Language Language

	// Document titles
	InvoiceTitle         string
	ProformaInvoiceTitle string
	PackingListTitle     string

	// Address block titles
	FromLabel          string
	ShipToLabel        string
	BillToLabel        string
	ReturnAddressLabel string

	// Contact info
	PhoneLabel string
	VATLabel   string

	// Item table headers
	ProductHeader   string
	SKUHeader       string
	QuantityHeader  string
	UnitPriceHeader string
	DiscountHeader  string
	TaxHeader       string
	TotalHeader     string
	PackedHeader    string

	// Totals block
	SubtotalBeforeDiscountLabel string
	DiscountLabel               string
	SubtotalLabel               string
	ShippingLabel               string
	TaxLabel                    string
	TotalLabel                  string
	EstimatedTotalLabel         string
	NotesLabel                  string

	// Document metadata lines
	InvoiceNumberPrefix string
	DateLabel           string
	OrderStatusLabel    string
	ShippingMethodLabel string

	// Proforma notices
	ProformaNotice       string
	ProformaFooterNotice string

	// Packing list trailer
	PackageInfoTitle        string
	PackageWeightLabel      string
	PackageDimensionsLabel  string
	CarrierLabel            string
	TrackingNumberLabel     string
	TotalItemsLabel         string
	PackerVerificationTitle string
	PackedByLabel           string
	SignatureLabel          string
}

// ForLanguage returns the dictionary for lang. Unsupported languages are
// rejected by Parse before they reach this function; an unknown value
// here degrades to the English base. Overlay fields left empty also fall
// back to English, so the worst case is a partially localized document,
// never a missing label.
func ForLanguage(lang Language) *Dictionary {
	d := english
	if o, ok := overlays[lang]; ok {
		d = merge(d, o)
	}
	d.Language = lang
	return &d
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// merge overlays every non-empty field of over onto base.
func merge(base, over Dictionary) Dictionary {
	base.InvoiceTitle = or(over.InvoiceTitle, base.InvoiceTitle)
	base.ProformaInvoiceTitle = or(over.ProformaInvoiceTitle, base.ProformaInvoiceTitle)
	base.PackingListTitle = or(over.PackingListTitle, base.PackingListTitle)
	base.FromLabel = or(over.FromLabel, base.FromLabel)
	base.ShipToLabel = or(over.ShipToLabel, base.ShipToLabel)
	base.BillToLabel = or(over.BillToLabel, base.BillToLabel)
	base.ReturnAddressLabel = or(over.ReturnAddressLabel, base.ReturnAddressLabel)
	base.PhoneLabel = or(over.PhoneLabel, base.PhoneLabel)
	base.VATLabel = or(over.VATLabel, base.VATLabel)
	base.ProductHeader = or(over.ProductHeader, base.ProductHeader)
	base.SKUHeader = or(over.SKUHeader, base.SKUHeader)
	base.QuantityHeader = or(over.QuantityHeader, base.QuantityHeader)
	base.UnitPriceHeader = or(over.UnitPriceHeader, base.UnitPriceHeader)
	base.DiscountHeader = or(over.DiscountHeader, base.DiscountHeader)
	base.TaxHeader = or(over.TaxHeader, base.TaxHeader)
	base.TotalHeader = or(over.TotalHeader, base.TotalHeader)
	base.PackedHeader = or(over.PackedHeader, base.PackedHeader)
	base.SubtotalBeforeDiscountLabel = or(over.SubtotalBeforeDiscountLabel, base.SubtotalBeforeDiscountLabel)
	base.DiscountLabel = or(over.DiscountLabel, base.DiscountLabel)
	base.SubtotalLabel = or(over.SubtotalLabel, base.SubtotalLabel)
	base.ShippingLabel = or(over.ShippingLabel, base.ShippingLabel)
	base.TaxLabel = or(over.TaxLabel, base.TaxLabel)
	base.TotalLabel = or(over.TotalLabel, base.TotalLabel)
	base.EstimatedTotalLabel = or(over.EstimatedTotalLabel, base.EstimatedTotalLabel)
	base.NotesLabel = or(over.NotesLabel, base.NotesLabel)
	base.InvoiceNumberPrefix = or(over.InvoiceNumberPrefix, base.InvoiceNumberPrefix)
	base.DateLabel = or(over.DateLabel, base.DateLabel)
	base.OrderStatusLabel = or(over.OrderStatusLabel, base.OrderStatusLabel)
	base.ShippingMethodLabel = or(over.ShippingMethodLabel, base.ShippingMethodLabel)
	base.ProformaNotice = or(over.ProformaNotice, base.ProformaNotice)
	base.ProformaFooterNotice = or(over.ProformaFooterNotice, base.ProformaFooterNotice)
	base.PackageInfoTitle = or(over.PackageInfoTitle, base.PackageInfoTitle)
	base.PackageWeightLabel = or(over.PackageWeightLabel, base.PackageWeightLabel)
	base.PackageDimensionsLabel = or(over.PackageDimensionsLabel, base.PackageDimensionsLabel)
	base.CarrierLabel = or(over.CarrierLabel, base.CarrierLabel)
	base.TrackingNumberLabel = or(over.TrackingNumberLabel, base.TrackingNumberLabel)
	base.TotalItemsLabel = or(over.TotalItemsLabel, base.TotalItemsLabel)
	base.PackerVerificationTitle = or(over.PackerVerificationTitle, base.PackerVerificationTitle)
	base.PackedByLabel = or(over.PackedByLabel, base.PackedByLabel)
	base.SignatureLabel = or(over.SignatureLabel, base.SignatureLabel)
	return base
}

var english = Dictionary{
	InvoiceTitle:         "INVOICE",
	ProformaInvoiceTitle: "PROFORMA INVOICE",
	PackingListTitle:     "PACKING LIST",

	FromLabel:          "From:",
	ShipToLabel:        "Ship To:",
	BillToLabel:        "Bill To:",
	ReturnAddressLabel: "Return Address:",

	PhoneLabel: "Phone:",
	VATLabel:   "VAT:",

	ProductHeader:   "Product",
	SKUHeader:       "SKU",
	QuantityHeader:  "Qty",
	UnitPriceHeader: "Unit Price",
	DiscountHeader:  "Discount",
	TaxHeader:       "Tax",
	TotalHeader:     "Total",
	PackedHeader:    "Packed",

	SubtotalBeforeDiscountLabel: "Subtotal Before Discount:",
	DiscountLabel:               "Discount:",
	SubtotalLabel:               "Subtotal:",
	ShippingLabel:               "Shipping:",
	TaxLabel:                    "Tax:",
	TotalLabel:                  "Total:",
	EstimatedTotalLabel:         "Estimated Total:",
	NotesLabel:                  "Notes:",

	InvoiceNumberPrefix: "Invoice #",
	DateLabel:           "Date:",
	OrderStatusLabel:    "Order Status:",
	ShippingMethodLabel: "Shipping Method:",

	ProformaNotice:       "This is not a tax invoice",
	ProformaFooterNotice: "This proforma invoice is provided for estimation purposes only and is not a request for payment.",

	PackageInfoTitle:        "Package Information:",
	PackageWeightLabel:      "Weight:",
	PackageDimensionsLabel:  "Dimensions:",
	CarrierLabel:            "Carrier:",
	TrackingNumberLabel:     "Tracking #:",
	TotalItemsLabel:         "Total Items:",
	PackerVerificationTitle: "Packer Verification:",
	PackedByLabel:           "Packed By:",
	SignatureLabel:          "Signature:",
}

var overlays = map[Language]Dictionary{
	German: {
		InvoiceTitle:         "RECHNUNG",
		ProformaInvoiceTitle: "PROFORMA-RECHNUNG",
		PackingListTitle:     "PACKLISTE",

		FromLabel:          "Von:",
		ShipToLabel:        "Versand an:",
		BillToLabel:        "Rechnungsadresse:",
		ReturnAddressLabel: "Rücksendeadresse:",

		PhoneLabel: "Telefon:",
		VATLabel:   "USt-IdNr.:",

		ProductHeader:   "Produkt",
		SKUHeader:       "Art.-Nr.",
		QuantityHeader:  "Menge",
		UnitPriceHeader: "Preis",
		DiscountHeader:  "Rabatt",
		TaxHeader:       "Steuer",
		TotalHeader:     "Gesamt",
		PackedHeader:    "Gepackt",

		SubtotalBeforeDiscountLabel: "Zwischensumme vor Rabatt:",
		DiscountLabel:               "Rabatt:",
		SubtotalLabel:               "Zwischensumme:",
		ShippingLabel:               "Versand:",
		TaxLabel:                    "Steuer:",
		TotalLabel:                  "Gesamt:",
		EstimatedTotalLabel:         "Geschätzte Summe:",
		NotesLabel:                  "Notizen:",

		InvoiceNumberPrefix: "Rechnung #",
		DateLabel:           "Datum:",
		OrderStatusLabel:    "Bestellstatus:",
		ShippingMethodLabel: "Versandart:",

		ProformaNotice:       "Dies ist keine Rechnung im steuerlichen Sinne",
		ProformaFooterNotice: "Diese Proforma-Rechnung dient nur zur Schätzung und ist keine Zahlungsaufforderung.",

		PackageInfoTitle:        "Paketinformationen:",
		PackageWeightLabel:      "Gewicht:",
		PackageDimensionsLabel:  "Abmessungen:",
		CarrierLabel:            "Frachtführer:",
		TrackingNumberLabel:     "Sendungsnummer:",
		TotalItemsLabel:         "Artikel gesamt:",
		PackerVerificationTitle: "Packerbestätigung:",
		PackedByLabel:           "Gepackt von:",
		SignatureLabel:          "Unterschrift:",
	},
	French: {
		InvoiceTitle:         "FACTURE",
		ProformaInvoiceTitle: "FACTURE PROFORMA",
		PackingListTitle:     "LISTE DE COLISAGE",

		FromLabel:          "De:",
		ShipToLabel:        "Expédition à:",
		BillToLabel:        "Adresse de facturation:",
		ReturnAddressLabel: "Adresse de retour:",

		PhoneLabel: "Téléphone:",
		VATLabel:   "Numéro de TVA:",

		ProductHeader:   "Produit",
		SKUHeader:       "Réf.",
		QuantityHeader:  "Quantité",
		UnitPriceHeader: "Prix unitaire",
		DiscountHeader:  "Remise",
		TaxHeader:       "Taxe",
		TotalHeader:     "Total",
		PackedHeader:    "Emballé",

		SubtotalBeforeDiscountLabel: "Sous-total avant remise:",
		DiscountLabel:               "Remise:",
		SubtotalLabel:               "Sous-total:",
		ShippingLabel:               "Expédition:",
		TaxLabel:                    "Taxe:",
		TotalLabel:                  "Total:",
		EstimatedTotalLabel:         "Total estimé:",
		NotesLabel:                  "Remarques:",

		InvoiceNumberPrefix: "Facture #",
		DateLabel:           "Date:",
		OrderStatusLabel:    "Statut de la commande:",
		ShippingMethodLabel: "Mode d'expédition:",

		ProformaNotice:       "Ceci n'est pas une facture fiscale",
		ProformaFooterNotice: "Cette facture proforma est fournie à titre estimatif et ne constitue pas une demande de paiement.",

		PackageInfoTitle:        "Informations sur le colis:",
		PackageWeightLabel:      "Poids:",
		PackageDimensionsLabel:  "Dimensions:",
		CarrierLabel:            "Transporteur:",
		TrackingNumberLabel:     "Numéro de suivi:",
		TotalItemsLabel:         "Nombre total d'articles:",
		PackerVerificationTitle: "Vérification de l'emballeur:",
		PackedByLabel:           "Emballé par:",
		SignatureLabel:          "Signature:",
	},
	Spanish: {
		InvoiceTitle:         "FACTURA",
		ProformaInvoiceTitle: "FACTURA PROFORMA",
		PackingListTitle:     "LISTA DE EMPAQUE",

		FromLabel:          "De:",
		ShipToLabel:        "Enviar a:",
		BillToLabel:        "Facturar a:",
		ReturnAddressLabel: "Dirección de devolución:",

		PhoneLabel: "Teléfono:",
		VATLabel:   "NIF/IVA:",

		ProductHeader:   "Producto",
		SKUHeader:       "Ref.",
		QuantityHeader:  "Cant.",
		UnitPriceHeader: "Precio unitario",
		DiscountHeader:  "Descuento",
		TaxHeader:       "Impuesto",
		TotalHeader:     "Total",
		PackedHeader:    "Empacado",

		SubtotalBeforeDiscountLabel: "Subtotal antes del descuento:",
		DiscountLabel:               "Descuento:",
		SubtotalLabel:               "Subtotal:",
		ShippingLabel:               "Envío:",
		TaxLabel:                    "Impuesto:",
		TotalLabel:                  "Total:",
		EstimatedTotalLabel:         "Total estimado:",
		NotesLabel:                  "Notas:",

		InvoiceNumberPrefix: "Factura #",
		DateLabel:           "Fecha:",
		OrderStatusLabel:    "Estado del pedido:",
		ShippingMethodLabel: "Método de envío:",

		ProformaNotice:       "Esto no es una factura fiscal",
		ProformaFooterNotice: "Esta factura proforma se emite únicamente a título estimativo y no constituye una solicitud de pago.",

		PackageInfoTitle:        "Información del paquete:",
		PackageWeightLabel:      "Peso:",
		PackageDimensionsLabel:  "Dimensiones:",
		CarrierLabel:            "Transportista:",
		TrackingNumberLabel:     "Número de seguimiento:",
		TotalItemsLabel:         "Total de artículos:",
		PackerVerificationTitle: "Verificación del empacador:",
		PackedByLabel:           "Empacado por:",
		SignatureLabel:          "Firma:",
	},
	Portuguese: {
		InvoiceTitle:         "FATURA",
		ProformaInvoiceTitle: "FATURA PRO FORMA",
		PackingListTitle:     "LISTA DE EMBALAGEM",

		FromLabel:          "De:",
		ShipToLabel:        "Enviar para:",
		BillToLabel:        "Cobrar de:",
		ReturnAddressLabel: "Endereço de devolução:",

		PhoneLabel: "Telefone:",
		VATLabel:   "NIF/IVA:",

		ProductHeader:   "Produto",
		SKUHeader:       "Ref.",
		QuantityHeader:  "Qtd.",
		UnitPriceHeader: "Preço unitário",
		DiscountHeader:  "Desconto",
		TaxHeader:       "Imposto",
		TotalHeader:     "Total",
		PackedHeader:    "Embalado",

		SubtotalBeforeDiscountLabel: "Subtotal antes do desconto:",
		DiscountLabel:               "Desconto:",
		SubtotalLabel:               "Subtotal:",
		ShippingLabel:               "Envio:",
		TaxLabel:                    "Imposto:",
		TotalLabel:                  "Total:",
		EstimatedTotalLabel:         "Total estimado:",
		NotesLabel:                  "Observações:",

		InvoiceNumberPrefix: "Fatura #",
		DateLabel:           "Data:",
		OrderStatusLabel:    "Status do pedido:",
		ShippingMethodLabel: "Método de envio:",

		ProformaNotice:       "Este documento não é uma fatura fiscal",
		ProformaFooterNotice: "Esta fatura pro forma destina-se apenas a estimativa e não constitui um pedido de pagamento.",

		PackageInfoTitle:        "Informações do pacote:",
		PackageWeightLabel:      "Peso:",
		PackageDimensionsLabel:  "Dimensões:",
		CarrierLabel:            "Transportadora:",
		TrackingNumberLabel:     "Número de rastreamento:",
		TotalItemsLabel:         "Total de itens:",
		PackerVerificationTitle: "Verificação do embalador:",
		PackedByLabel:           "Embalado por:",
		SignatureLabel:          "Assinatura:",
	},
	Thai: {
		InvoiceTitle:         "ใบแจ้งหนี้",
		ProformaInvoiceTitle: "ใบแจ้งหนี้เบื้องต้น",
		PackingListTitle:     "ใบรายการบรรจุ",

		FromLabel:          "จาก:",
		ShipToLabel:        "จัดส่งถึง:",
		BillToLabel:        "เรียกเก็บเงินที่:",
		ReturnAddressLabel: "ที่อยู่ส่งคืน:",

		PhoneLabel: "โทรศัพท์:",
		VATLabel:   "เลขประจำตัวผู้เสียภาษี:",

		ProductHeader:   "สินค้า",
		SKUHeader:       "รหัสสินค้า",
		QuantityHeader:  "จำนวน",
		UnitPriceHeader: "ราคาต่อหน่วย",
		DiscountHeader:  "ส่วนลด",
		TaxHeader:       "ภาษี",
		TotalHeader:     "รวม",
		PackedHeader:    "บรรจุแล้ว",

		SubtotalBeforeDiscountLabel: "ยอดรวมก่อนหักส่วนลด:",
		DiscountLabel:               "ส่วนลด:",
		SubtotalLabel:               "ยอดรวมย่อย:",
		ShippingLabel:               "ค่าจัดส่ง:",
		TaxLabel:                    "ภาษี:",
		TotalLabel:                  "ยอดรวมทั้งสิ้น:",
		EstimatedTotalLabel:         "ยอดรวมโดยประมาณ:",
		NotesLabel:                  "หมายเหตุ:",

		InvoiceNumberPrefix: "ใบแจ้งหนี้ #",
		DateLabel:           "วันที่:",
		OrderStatusLabel:    "สถานะคำสั่งซื้อ:",
		ShippingMethodLabel: "วิธีการจัดส่ง:",

		ProformaNotice:       "เอกสารนี้ไม่ใช่ใบกำกับภาษี",
		ProformaFooterNotice: "ใบแจ้งหนี้เบื้องต้นนี้ใช้เพื่อการประมาณราคาเท่านั้น ไม่ใช่คำขอชำระเงิน",

		PackageInfoTitle:        "ข้อมูลพัสดุ:",
		PackageWeightLabel:      "น้ำหนัก:",
		PackageDimensionsLabel:  "ขนาด:",
		CarrierLabel:            "ผู้ขนส่ง:",
		TrackingNumberLabel:     "หมายเลขติดตาม:",
		TotalItemsLabel:         "จำนวนสินค้าทั้งหมด:",
		PackerVerificationTitle: "การตรวจสอบโดยผู้บรรจุ:",
		PackedByLabel:           "บรรจุโดย:",
		SignatureLabel:          "ลายเซ็น:",
	},
	Italian: {
		InvoiceTitle:         "FATTURA",
		ProformaInvoiceTitle: "FATTURA PROFORMA",
		PackingListTitle:     "DISTINTA DI IMBALLAGGIO",

		FromLabel:          "Da:",
		ShipToLabel:        "Spedire a:",
		BillToLabel:        "Fatturare a:",
		ReturnAddressLabel: "Indirizzo di reso:",

		PhoneLabel: "Telefono:",
		VATLabel:   "Partita IVA:",

		ProductHeader:   "Prodotto",
		SKUHeader:       "Cod.",
		QuantityHeader:  "Qtà",
		UnitPriceHeader: "Prezzo unitario",
		DiscountHeader:  "Sconto",
		TaxHeader:       "Imposta",
		TotalHeader:     "Totale",
		PackedHeader:    "Imballato",

		SubtotalBeforeDiscountLabel: "Subtotale prima dello sconto:",
		DiscountLabel:               "Sconto:",
		SubtotalLabel:               "Subtotale:",
		ShippingLabel:               "Spedizione:",
		TaxLabel:                    "Imposta:",
		TotalLabel:                  "Totale:",
		EstimatedTotalLabel:         "Totale stimato:",
		NotesLabel:                  "Note:",

		InvoiceNumberPrefix: "Fattura #",
		DateLabel:           "Data:",
		OrderStatusLabel:    "Stato dell'ordine:",
		ShippingMethodLabel: "Metodo di spedizione:",

		ProformaNotice:       "Questo documento non è una fattura fiscale",
		ProformaFooterNotice: "Questa fattura proforma è fornita a solo scopo di stima e non costituisce una richiesta di pagamento.",

		PackageInfoTitle:        "Informazioni sul collo:",
		PackageWeightLabel:      "Peso:",
		PackageDimensionsLabel:  "Dimensioni:",
		CarrierLabel:            "Corriere:",
		TrackingNumberLabel:     "Numero di tracciamento:",
		TotalItemsLabel:         "Totale articoli:",
		PackerVerificationTitle: "Verifica dell'imballatore:",
		PackedByLabel:           "Imballato da:",
		SignatureLabel:          "Firma:",
	},
}
