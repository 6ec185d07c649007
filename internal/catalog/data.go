package catalog

const rawMenu = `{
  "appetizers": [
    {"id": "kebab", "name": "Kebab", "price": "7.00", "description": "Minced meat, garlic, onions, cumin, coriander, chili, skewered & grilled.", "image": "https://source.unsplash.com/featured/?kebab"},
    {"id": "bhajia", "name": "Bhajia", "price": "6.99", "description": "Sliced potatoes, deep-fried and coated with spiced gram flour.", "image": "https://source.unsplash.com/featured/?fritters"},
    {"id": "garlic-bread", "name": "Garlic Bread", "price": "5.99", "description": "Toasted bread infused with garlic butter and fresh parsley.", "image": "https://source.unsplash.com/featured/?garlicbread"},
    {"id": "stuffed-mushrooms", "name": "Stuffed Mushrooms", "price": "8.49", "description": "Mushrooms stuffed with cheese, garlic, and breadcrumbs, then baked.", "image": "https://source.unsplash.com/featured/?mushrooms"},
    {"id": "mandazi", "name": "Mandazi", "price": "6.49", "description": "Fried dough infused with coconut milk and cardamom, served with tea.", "image": "https://source.unsplash.com/featured/?pastry"},
    {"id": "chicken-wings", "name": "Chicken Wings", "price": "9.99", "description": "Chicken wings marinated in a spicy sauce, deep-fried or grilled.", "image": "https://source.unsplash.com/featured/?chickenwings"}
  ],
  "mainCourse": [
    {"id": "nyama-choma", "name": "Nyama Choma", "price": "15.99", "description": "Grilled goat or beef meat, served with kachumbari and ugali.", "image": "https://source.unsplash.com/featured/?grilledmeat"},
    {"id": "steak-and-fries", "name": "Steak and Fries", "price": "18.99", "description": "Juicy steak grilled to perfection, served with crispy fries.", "image": "https://source.unsplash.com/featured/?steak"},
    {"id": "pasta-alfredo", "name": "Pasta Alfredo", "price": "13.49", "description": "Fettuccine pasta tossed in a rich Alfredo sauce with parmesan.", "image": "https://source.unsplash.com/featured/?pasta"},
    {"id": "chicken-parmesan", "name": "Chicken Parmesan", "price": "14.99", "description": "Breaded chicken breast topped with marinara sauce and melted cheese.", "image": "https://source.unsplash.com/featured/?chickenparmesan"},
    {"id": "pilau", "name": "Pilau", "price": "22.99", "description": "Spiced rice cooked with beef or chicken, served with kachumbari.", "image": "https://source.unsplash.com/featured/?rice"},
    {"id": "veggie-stir-fry", "name": "Veggie Stir Fry", "price": "11.99", "description": "A mix of fresh vegetables stir-fried with soy sauce and ginger.", "image": "https://source.unsplash.com/featured/?stirfry"}
  ],
  "desserts": [
    {"id": "chocolate-cake", "name": "Chocolate Cake", "price": "6.49", "description": "Rich and moist chocolate cake topped with a creamy ganache.", "image": "https://source.unsplash.com/featured/?chocolatecake"},
    {"id": "cheesecake", "name": "Cheesecake", "price": "5.99", "description": "Creamy cheesecake with a graham cracker crust and berry topping.", "image": "https://source.unsplash.com/featured/?cheesecake"},
    {"id": "ice-cream-sundae", "name": "Ice Cream Sundae", "price": "4.99", "description": "Vanilla ice cream topped with chocolate syrup and whipped cream.", "image": "https://source.unsplash.com/featured/?icecream"},
    {"id": "tiramisu", "name": "Tiramisu", "price": "6.99", "description": "Classic Italian dessert with layers of espresso-soaked ladyfingers.", "image": "https://source.unsplash.com/featured/?tiramisu"},
    {"id": "fruit-tart", "name": "Fruit Tart", "price": "5.49", "description": "Crispy pastry crust filled with fresh fruit and custard.", "image": "https://source.unsplash.com/featured/?fruittart"}
  ],
  "beverages": [
    {"id": "pink-moscato", "name": "Confetti Pink Moscato - Bottle", "price": "20.00", "image": "https://source.unsplash.com/featured/?wine"},
    {"id": "white-wine", "name": "Moscato Primo Amore - Bottle", "price": "20.00", "image": "https://source.unsplash.com/featured/?whitewine"},
    {"id": "red-wine", "name": "Roscato Rosso Dolce - Bottle", "price": "20.00", "image": "https://source.unsplash.com/featured/?redwine"},
    {"id": "bellini-peach-tea", "name": "Bellini Peach Tea", "price": "4.29", "image": "https://source.unsplash.com/featured/?tea"},
    {"id": "classic-lemonade", "name": "Classic Lemonade", "price": "3.49", "image": "https://source.unsplash.com/featured/?lemonade"},
    {"id": "iced-tea", "name": "Iced Tea", "price": "3.49", "image": "https://source.unsplash.com/featured/?icedtea"},
    {"id": "raspberry-lemonade", "name": "Raspberry Lemonade", "price": "4.29", "image": "https://source.unsplash.com/featured/?raspberrylemonade"},
    {"id": "soft-drink", "name": "Soft Drink", "price": "3.49", "image": "https://source.unsplash.com/featured/?soda"}
  ]
}`
