package checkout

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"kitchenly_back_end/internal/models"
	"kitchenly_back_end/internal/store"

	"github.com/google/uuid"
)

// State est l'état du parcours de commande d'un utilisateur.
type State string

const (
	// StateReviewing : l'utilisateur choisit adresse et moyen de paiement.
	StateReviewing State = "reviewing"
	// StateProcessing : commande en cours, aucune action possible.
	StateProcessing State = "processing"
	// StatePlaced : confirmation affichée avant fermeture automatique.
	StatePlaced State = "placed"
)

var (
	ErrEmptyCart         = errors.New("panier vide")
	ErrAlreadyProcessing = errors.New("commande déjà en cours")
	ErrInvalidSelection  = errors.New("sélection invalide")
)

// Flow est la machine à états du checkout : Reviewing → Processing → Placed.
// Le traitement est simulé par deux minuteries (traitement puis confirmation) ;
// aucune n'est un appel réseau. Les minuteries sont conservées sur la session
// pour qu'une future annulation reste possible sans refonte.
type Flow struct {
	mu              sync.Mutex
	carts           *store.CartStore
	orders          *store.OrderStore
	addresses       []models.Address
	payments        []models.PaymentMethod
	processingDelay time.Duration
	successDelay    time.Duration
	onOrderPlaced   func(models.Order)
	sessions        map[string]*session
	seq             int
}

type session struct {
	state        State
	addressIndex int
	paymentIndex int
	order        models.Order
	timer        *time.Timer
}

func New(carts *store.CartStore, orders *store.OrderStore, processingDelay, successDelay time.Duration) *Flow {
	return &Flow{
		carts:           carts,
		orders:          orders,
		addresses:       DefaultAddresses(),
		payments:        DefaultPaymentMethods(),
		processingDelay: processingDelay,
		successDelay:    successDelay,
		sessions:        make(map[string]*session),
	}
}

// OnOrderPlaced enregistre le signal de fin consommé par le shell applicatif.
// À appeler avant de servir ; émis exactement une fois par commande.
func (f *Flow) OnOrderPlaced(fn func(models.Order)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onOrderPlaced = fn
}

func (f *Flow) Addresses() []models.Address {
	out := make([]models.Address, len(f.addresses))
	copy(out, f.addresses)
	return out
}

func (f *Flow) PaymentMethods() []models.PaymentMethod {
	out := make([]models.PaymentMethod, len(f.payments))
	copy(out, f.payments)
	return out
}

// State retourne l'état courant du parcours de l'utilisateur.
func (f *Flow) State(userID string) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session(userID).state
}

// Selection retourne les index d'adresse et de paiement choisis.
func (f *Flow) Selection(userID string) (addressIndex, paymentIndex int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sess := f.session(userID)
	return sess.addressIndex, sess.paymentIndex
}

// Select choisit adresse et moyen de paiement parmi les listes candidates.
// Possible uniquement en Reviewing.
func (f *Flow) Select(userID string, addressIndex, paymentIndex int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess := f.session(userID)
	if sess.state != StateReviewing {
		return ErrAlreadyProcessing
	}
	if addressIndex < 0 || addressIndex >= len(f.addresses) {
		return ErrInvalidSelection
	}
	if paymentIndex < 0 || paymentIndex >= len(f.payments) {
		return ErrInvalidSelection
	}

	sess.addressIndex = addressIndex
	sess.paymentIndex = paymentIndex
	return nil
}

// PlaceOrder démarre le traitement de la commande. Un second appel pendant
// le traitement est ignoré : un seul signal de fin sera émis.
func (f *Flow) PlaceOrder(userID string) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess := f.session(userID)
	if sess.state != StateReviewing {
		return models.Order{}, ErrAlreadyProcessing
	}

	items := f.carts.Items(userID)
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	f.seq++
	order := models.Order{
		ID:        uuid.NewString(),
		Reference: fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), f.seq),
		UserID:    userID,
		Status:    string(StateProcessing),
		Address:   f.addresses[sess.addressIndex],
		Payment:   f.payments[sess.paymentIndex],
		CreatedAt: time.Now(),
	}

	sess.state = StateProcessing
	sess.order = order
	sess.timer = time.AfterFunc(f.processingDelay, func() { f.complete(userID) })

	log.Printf("🛒 Commande %s en cours de traitement pour %s", order.Reference, userID)
	return order, nil
}

// complete fait passer la session en Placed, en capturant le total du panier
// à l'instant de la transition — le panier sera vidé juste après.
func (f *Flow) complete(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sess := f.session(userID)
	if sess.state != StateProcessing {
		return
	}

	items := f.carts.Items(userID)
	totals := store.ComputeTotals(items)

	sess.order.Items = items
	sess.order.Subtotal = totals.Subtotal
	sess.order.Shipping = totals.Shipping
	sess.order.Tax = totals.Tax
	sess.order.AmountTotal = totals.Total
	sess.order.Status = string(StatePlaced)

	sess.state = StatePlaced
	sess.timer = time.AfterFunc(f.successDelay, func() { f.finish(userID) })
}

// finish vide le panier, enregistre la commande, émet le signal de fin et
// ramène la session en Reviewing.
func (f *Flow) finish(userID string) {
	f.mu.Lock()
	sess := f.session(userID)
	if sess.state != StatePlaced {
		f.mu.Unlock()
		return
	}
	order := sess.order
	sess.state = StateReviewing
	sess.order = models.Order{}
	sess.timer = nil
	notify := f.onOrderPlaced
	f.mu.Unlock()

	f.carts.Clear(userID)
	f.orders.Save(order)

	log.Printf("✅ Commande %s confirmée (%.2f€)", order.Reference, order.AmountTotal)

	if notify != nil {
		notify(order)
	}
}

func (f *Flow) session(userID string) *session {
	sess, ok := f.sessions[userID]
	if !ok {
		sess = &session{state: StateReviewing}
		f.sessions[userID] = sess
	}
	return sess
}
