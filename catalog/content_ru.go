package catalog

// Russian placeholder template and authored entries.

var russianTemplate = template{
	Title:   "Лунный день {day}",
	Summary: "Общие рекомендации для лунного дня {day}. Следуйте ритму луны и соизмеряйте усилия.",
	BulletPoints: []string{
		"Согласуйте планы с энергией дня {day}.",
		"Предпочитайте ровный распорядок резким переменам.",
		"Отмечайте, как меняются настроение и отдых в течение дня.",
	},
	Notes: []string{
		"Для лунного дня {day} пока нет отдельного комментария. Темы ниже следуют общей дуге цикла.",
		"Относитесь к рекомендациям как к ориентиру, а не правилу. Обстоятельства дня важнее календаря.",
	},
	Sections: map[string]string{
		"health":             "В день {day} еда легкая и регулярная; вода важнее нагрузки.",
		"business":           "Рутинная работа в день {day} идет хорошо; подписания лучше отложить.",
		"relationships":      "Слушайте больше, чем говорите; день {day} вознаграждает терпение.",
		"sleep":              "Сны в ночь дня {day} отражают незавершенные дела цикла.",
		"practice":           "Дню {day} подходят короткая медитация или дыхательные практики.",
		"symbol":             "Классический символ дню {day} в этом каталоге не назначен.",
		"stone":              "Горный хрусталь — нейтральный спутник дня {day}.",
		"color":              "Дню {day} подходят мягкие белые и серебристые тона.",
		"zodiac":             "Влияние определяется текущим знаком луны, а не самим днем {day}.",
		"astrologerOpinions": "Мнения о дне {day} расходятся; большинство советует умеренность.",
	},
}

var russianAuthored = map[int]Entry{
	1: {
		Day:     1,
		Title:   "День 1 · Посев Семени",
		Summary: "Новое начало. Действия легкие, фокус на намерениях.",
		BulletPoints: []string{
			"Ставьте мягкие цели, избегайте интенсивных физических нагрузок.",
			"Медитация и планирование процветают.",
			"Поддерживайте водный баланс; нервная система чувствительна.",
		},
		Notes: []string{
			"Первый лунный день ценит чистоту мысли. Поддерживайте спокойную и незагроможденную обстановку.",
			"Избегайте обязывающих обязательств. Вместо этого набросайте планы, к которым можно вернуться по мере развития цикла.",
			"Легкая и сырая пища поддерживает перезагрузку организма.",
		},
		Sections: map[string]string{
			"symbol": "Светильник: первая искра цикла.",
			"stone":  "Алмаз и горный хрусталь.",
			"color":  "Белый.",
		},
	},
	2: {
		Day:     2,
		Title:   "День 2 · Луна в Скорпионе",
		Summary: "Исследования, интроспекция и стратегическое планирование процветают.",
		BulletPoints: []string{
			"Отлично для анализа, научной работы, глубокого чтения.",
			"Разговоры выигрывают от честности и эмоциональной нюансировки.",
			"Гнев и обида легко всплывают—практикуйте осознанное спокойствие.",
		},
		Notes: []string{
			"Направьте интенсивность в творческую или духовную практику. Ведение дневника и работа с тенью продуктивны.",
			"Идеальное время для уточнения финансовых планов или инвестиционных исследований; осторожность с импульсивными действиями.",
			"Ешьте питательные супы, зерновые и ферментированные продукты, чтобы заземлить водные энергии.",
		},
		Sections: map[string]string{
			"symbol": "Рог изобилия: накопление и усвоение.",
			"stone":  "Сапфир.",
		},
	},
	3: {
		Day:     3,
		Title:   "День 3 · Активация Импульса",
		Summary: "Уровень энергии растет. Отлично для тренировок и решительных действий.",
		BulletPoints: []string{
			"Завершайте дела; решайте затянувшиеся задачи.",
			"Сотрудничайте в трудных разговорах, оставаясь дипломатичными.",
			"Снимайте напряжение движением; растяжка или боевые искусства сияют.",
		},
		Notes: []string{
			"Третий лунный день благоприятствует действию в паре со стратегией—не бросайтесь сломя голову без плана.",
			"Направьте напористость в конструктивные каналы, чтобы избежать конфликтов.",
			"Поддерживайте организм белковой пищей; хорошо отдыхайте.",
		},
		Sections: map[string]string{
			"symbol": "Леопард: сдержанная сила, готовая к действию.",
			"color":  "Красный и медный.",
		},
	},
	4: {
		Day:     4,
		Title:   "День 4 · Гора",
		Summary: "Стабильность и настойчивость. Стройте основы.",
		BulletPoints: []string{
			"Фокус на долгосрочных проектах и обязательствах.",
			"Избегайте начинать новые предприятия; укрепляйте существующие.",
			"Физические упражнения и заземляющие активности полезны.",
		},
		Notes: []string{
			"Этот день подчеркивает структуру и дисциплину. Хорошо для административной работы и организации.",
			"Будьте терпеливы с препятствиями; они часть процесса.",
			"Корнеплоды и сытные блюда поддерживают энергию дня.",
		},
		Sections: map[string]string{
			"symbol": "Древо познания; гора.",
			"stone":  "Нефрит.",
		},
	},
	5: {
		Day:     5,
		Title:   "День 5 · Единорог",
		Summary: "Творчество и вдохновение свободно текут.",
		BulletPoints: []string{
			"Отлично для художественных проектов и творческого самовыражения.",
			"Социальные взаимодействия гармоничны и воодушевляющи.",
			"Избегайте излишеств; поддерживайте баланс.",
		},
		Notes: []string{
			"Пятый лунный день приносит ясность и видение. Доверяйте своей интуиции.",
			"Хорошее время для нетворкинга и построения отношений.",
			"Легкая, свежая пища соответствует яркой энергии дня.",
		},
		Sections: map[string]string{
			"symbol": "Единорог: редкая ясность и преданность.",
			"color":  "Синий и бирюзовый.",
		},
	},
}

// templates and authored index the per-language content. Both fall back to
// English for unknown languages.
var templates = map[string]template{
	"en": englishTemplate,
	"ru": russianTemplate,
}

var authored = map[string]map[int]Entry{
	"en": englishAuthored,
	"ru": russianAuthored,
}
