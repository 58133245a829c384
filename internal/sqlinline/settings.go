package sqlinline

const QSelectSettings = `--sql f6a7b8c9-d0e1-4f2a-b3c4-d5e6f7a8b9c0
select default_currency, email_notifications
from settings
limit 1;
`

const QUpdateSettings = `--sql a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d
update settings
set default_currency = $1::text,
    email_notifications = $2::boolean;
`
