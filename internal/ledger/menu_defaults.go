package ledger

// DefaultMenu is the card served until an admin edits it, matching the
// launch menu of the restaurant.
func DefaultMenu() []Dish {
	return []Dish{
		{
			ID:          "foutou-graine",
			Name:        "Foutou Banane Sauce Graine",
			Description: "Boules de foutou banane onctueuses servies avec une sauce graine riche à la viande et au crabe.",
			Price:       6500,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1541544741938-0af808871cc0?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "placali-sauce",
			Name:        "Placali Sauce Kpala",
			Description: "Pâte de manioc fermentée accompagnée d'une sauce gluante traditionnelle, riche en saveurs de mer.",
			Price:       5000,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1589187151032-573a91317445?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "attieke-thon",
			Name:        "Attiéké Poisson Thon",
			Description: "Semoule de manioc légère servie avec du thon frit, des oignons frais, des tomates et du piment.",
			Price:       4500,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "kedjenou-trad",
			Name:        "Kedjenou de Poulet",
			Description: "Ragoût de poulet cuit à l'étouffée avec des légumes frais dans son propre jus.",
			Price:       6000,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "poulet-dg-ivoire",
			Name:        "Poulet DG Bassam",
			Description: "Un mélange savoureux de poulet, de plantains frits et de légumes colorés.",
			Price:       7000,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "alloco-poisson",
			Name:        "Alloco Poisson Frit",
			Description: "Bananes plantains frites servies avec un beau poisson doré et une sauce tomate épicée.",
			Price:       5500,
			Category:    CategoryMain,
			Image:       "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&q=80&w=800",
		},
	}
}
